// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"context"
	"fmt"
)

// Func is a step run by [Run].
type Func func(ctx context.Context, state *State) error

// Run runs the given [Func]s in the order given.
//
// It stops at the first [Func] that fails and returns its error wrapped in a
// [StepError] with the [Stage] it failed in. The state is aborted then and no
// further [Func] runs. Panics are recovered and returned as [ErrPanic].
func Run(ctx context.Context, state *State, funcs ...Func) error {
	err := runFuncs(ctx, state, funcs)
	if err != nil {
		stage := state.Stage()
		state.abort()

		return &StepError{Stage: stage, Err: err}
	}

	return nil
}

func runFuncs(ctx context.Context, state *State, funcs []Func) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		if recoveredErr, ok := rec.(error); ok {
			err = fmt.Errorf("%w: %w", ErrPanic, recoveredErr)
		} else {
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()

	for _, fn := range funcs {
		if err = fn(ctx, state); err != nil {
			return err
		}
	}

	return nil
}
