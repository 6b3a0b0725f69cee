// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"context"
	"log/slog"

	"github.com/aibor/pginit/internal/proc"
)

// Initdb runs the cluster initialization tool for the data directory and
// waits for it to terminate.
func Initdb(ctx context.Context, cfg Config) error {
	slog.Info("Running initdb", slog.String("data_dir", cfg.DataDir))

	return proc.Run(ctx, proc.Spec{
		Name:   "initdb",
		Path:   cfg.InitdbBin,
		Args:   cfg.InitdbArgs(),
		Output: logOutput(slog.With(slog.String("component", "initdb"))),
	})
}

// WithInitdb returns a [Func] that wraps [Initdb]. It does nothing if the
// data directory is already initialized.
func WithInitdb(cfg Config) Func {
	return func(ctx context.Context, state *State) error {
		if state.Stage() == StageInitialized {
			slog.Info("Data directory already initialized, skipping initdb",
				slog.String("data_dir", cfg.DataDir))

			return nil
		}

		if err := state.advance(StageInitializing); err != nil {
			return err
		}

		return Initdb(ctx, cfg)
	}
}

func logOutput(logger *slog.Logger) proc.OutputFunc {
	return func(stream proc.Stream, line string) {
		logger.Info(line, slog.String("stream", string(stream)))
	}
}
