// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/aibor/pginit/entrypoint"
	"github.com/aibor/pginit/internal/exitcode"
	"github.com/aibor/pginit/internal/proc"
)

// IO provides output details for the command.
type IO struct {
	Stderr io.Writer
}

// BootFunc bootstraps the data directory and hands off to the server.
type BootFunc func(ctx context.Context, cfg entrypoint.Config, argv, env []string) error

// boot is replaced in tests.
var boot BootFunc = entrypoint.Boot

func handleBootError(err error) int {
	var stepErr *entrypoint.StepError
	if errors.As(err, &stepErr) {
		slog.Debug("Failed stage", slog.String("stage", stepErr.Stage.String()))
	}

	var cmdErr *proc.CommandError
	if errors.As(err, &cmdErr) {
		if code, ok := exitcode.From(cmdErr); ok {
			slog.Debug("Child process failed",
				slog.String("name", cmdErr.Name),
				slog.Int("exit_code", code))
		}
	}

	if errors.Is(err, entrypoint.ErrStillPrivileged) {
		slog.Warn("Process was able to regain root after dropping privileges")
	}

	slog.Error(err.Error())

	return exitcode.Failure
}

// Run is the main entry point for the CLI command.
//
// It returns only if bootstrapping fails. The args and env are passed to the
// server unchanged.
func Run(ctx context.Context, args, env []string, cfg IO) int {
	debugEnabled, envErr := DebugEnabled(env)

	setupLogging(cfg.Stderr, debugEnabled)

	if envErr != nil {
		slog.Warn("Ignoring invalid debug setting", slog.Any("error", envErr))
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		slog.Debug("Build info", slog.String("version", buildInfo.Main.Version))
	}

	err := boot(ctx, entrypoint.DefaultConfig(), args, env)
	if err != nil {
		return handleBootError(err)
	}

	// Boot only returns without error if the handoff did not replace the
	// process, which is a failure as well.
	slog.Error("Server handoff returned")

	return exitcode.Failure
}
