// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aibor/pginit/internal/pipe"
	"github.com/aibor/pginit/internal/proc"
)

// LoadSeeds applies all seed files found in the input directory, one after
// the other, in directory order.
//
// Each file is applied by its own single-user mode engine instance. The first
// failure stops further processing.
func LoadSeeds(ctx context.Context, cfg Config) error {
	paths, err := ListRegularFiles(cfg.InputDir, cfg.SeedSuffix)
	if err != nil {
		return fmt.Errorf("list seed files: %w", err)
	}

	for _, path := range paths {
		if err := ApplySeed(ctx, cfg, path); err != nil {
			return err
		}
	}

	return nil
}

// ApplySeed starts the engine in single-user mode and feeds the given file
// into its stdin through a pipe.
//
// The file is written in chunks of [Config.ChunkSize]. The write end of the
// pipe is closed once the file is exhausted, then the engine is waited for. If
// the engine fails, its error is returned even if feeding failed as well.
func ApplySeed(ctx context.Context, cfg Config, path string) error {
	slog.Info("Running seed file", slog.String("path", path))

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer src.Close()

	reader, writer, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("pipe: %w", err)
	}

	process, err := proc.Start(ctx, proc.Spec{
		Name:  "seed " + path,
		Path:  cfg.EngineBin,
		Args:  cfg.EngineArgs(),
		Stdin: reader,
		Output: logOutput(slog.With(
			slog.String("component", "postgres"),
			slog.String("seed", path),
		)),
	})

	// The child holds its own copy of the read end. Keeping the parent's copy
	// open would prevent the child from seeing EOF.
	_ = reader.Close()

	if err != nil {
		_ = writer.Close()
		return err
	}

	written, feedErr := pipe.Feed(path, writer, src, pipe.Chunked(cfg.ChunkSize))

	if err := process.Wait(); err != nil {
		return err
	}

	if feedErr != nil {
		return feedErr
	}

	slog.Debug("Applied seed file",
		slog.String("path", path),
		slog.Int64("bytes", written))

	return nil
}

// WithSeeds returns a [Func] that wraps [LoadSeeds]. It does nothing if the
// data directory was already initialized before.
func WithSeeds(cfg Config) Func {
	return func(ctx context.Context, state *State) error {
		if state.Stage() == StageInitialized {
			return nil
		}

		if err := state.advance(StageSeeding); err != nil {
			return err
		}

		return LoadSeeds(ctx, cfg)
	}
}
