// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// IsInitialized returns true if the version marker file exists in the data
// directory.
func IsInitialized(cfg Config) (bool, error) {
	path := cfg.VersionFilePath()

	_, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("stat version file: %w", err)
	}

	return true, nil
}

// WithDetection returns a [Func] that wraps [IsInitialized] and moves the
// [State] to [StageInitialized] or [StageUninitialized].
func WithDetection(cfg Config) Func {
	return func(_ context.Context, state *State) error {
		initialized, err := IsInitialized(cfg)
		if err != nil {
			return err
		}

		next := StageUninitialized
		if initialized {
			next = StageInitialized
		}

		slog.Debug("Detected data directory state",
			slog.String("data_dir", cfg.DataDir),
			slog.String("stage", next.String()))

		return state.advance(next)
	}
}
