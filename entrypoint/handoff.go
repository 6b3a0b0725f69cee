// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"context"
	"log/slog"
)

// execFunc replaces the process image. It returns only on failure.
var execFunc = execve

// Handoff replaces the process with the server, passing the given argv and
// environment unchanged.
//
// It does not return on success. Any returned error is a [HandoffError].
func Handoff(cfg Config, argv, env []string) error {
	slog.Info("Starting real postgres", slog.String("path", cfg.ServerBin))

	if err := execFunc(cfg.ServerBin, argv, env); err != nil {
		return &HandoffError{Path: cfg.ServerBin, Err: err}
	}

	return nil
}

// WithHandoff returns a [Func] that wraps [Handoff]. It must be the last
// [Func].
func WithHandoff(cfg Config, argv, env []string) Func {
	return func(_ context.Context, state *State) error {
		if err := state.advance(StageExecd); err != nil {
			return err
		}

		return Handoff(cfg, argv, env)
	}
}
