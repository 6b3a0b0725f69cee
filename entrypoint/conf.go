// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// InstallConfigs copies all config files found in the input directory into
// the data directory and hands them over to the configured identity.
//
// Existing files of the same name are overwritten.
func InstallConfigs(cfg Config) error {
	paths, err := ListRegularFiles(cfg.InputDir, cfg.ConfSuffix)
	if err != nil {
		return fmt.Errorf("list config files: %w", err)
	}

	for _, path := range paths {
		dst := filepath.Join(cfg.DataDir, filepath.Base(path))

		slog.Info("Installing config file",
			slog.String("path", path),
			slog.String("destination", dst))

		if err := installFile(path, dst, cfg.ConfMode, cfg.Identity); err != nil {
			return err
		}
	}

	return nil
}

func installFile(srcPath, dstPath string, mode os.FileMode, owner Identity) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("open destination: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("copy %s: %w", srcPath, err)
	}

	if err := fchown(dst.Fd(), dstPath, owner); err != nil {
		_ = dst.Close()
		return err
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dstPath, err)
	}

	return nil
}

// WithConfigs returns a [Func] that wraps [InstallConfigs]. It moves the
// [State] through [StageConfiguring] to [StageReady].
func WithConfigs(cfg Config) Func {
	return func(_ context.Context, state *State) error {
		if err := state.advance(StageConfiguring); err != nil {
			return err
		}

		if err := InstallConfigs(cfg); err != nil {
			return err
		}

		return state.advance(StageReady)
	}
}
