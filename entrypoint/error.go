// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"errors"
	"fmt"
)

var (
	// ErrPanic is returned if a [Func] panicked.
	ErrPanic = errors.New("function panicked")

	// ErrPrivilegesDropped is returned if a privileged operation is
	// requested after privileges have been dropped.
	ErrPrivilegesDropped = errors.New("privileges already dropped")

	// ErrStillPrivileged is returned if root privileges can be regained after
	// dropping them.
	ErrStillPrivileged = errors.New("privileges can be regained")

	// ErrStageOrder is returned for a stage transition that is not allowed.
	ErrStageOrder = errors.New("invalid stage transition")
)

// StepError is returned by [Run] if a [Func] failed. It carries the [Stage]
// the failure occurred in.
type StepError struct {
	Stage Stage
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (*StepError) Is(other error) bool {
	_, ok := other.(*StepError)
	return ok
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// HandoffError is returned if the process could not be replaced by the server.
type HandoffError struct {
	Path string
	Err  error
}

func (e *HandoffError) Error() string {
	return fmt.Sprintf("handoff to %s: %v", e.Path, e.Err)
}

func (*HandoffError) Is(other error) bool {
	_, ok := other.(*HandoffError)
	return ok
}

func (e *HandoffError) Unwrap() error {
	return e.Err
}
