// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

import (
	"fmt"
)

// CommandError is returned if a child process could not be started or did
// not terminate successfully.
type CommandError struct {
	// Name of the [Spec] of the failed process.
	Name string

	// Err is the underlying error. It is an [exitcode.Error] if the child
	// exited with a non-zero exit code.
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
