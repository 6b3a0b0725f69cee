// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"context"
)

// Steps returns the bootstrap [Func]s up to [StageReady] in the order they
// must run.
//
// The data directory is prepared and privileges are dropped before any file
// of the input directory is read.
func Steps(cfg Config, priv *Privileged) []Func {
	return []Func{
		WithDetection(cfg),
		WithDataDir(cfg, priv),
		WithPrivilegeDrop(cfg, priv),
		WithInitdb(cfg),
		WithSeeds(cfg),
		WithConfigs(cfg),
	}
}

// Boot bootstraps the data directory and replaces the process with the
// server, passing the given argv and environment.
//
// It must run with the privileges required to set up the data directory,
// usually as root. It returns only on failure.
func Boot(ctx context.Context, cfg Config, argv, env []string) error {
	priv := AcquirePrivileges()

	funcs := append(Steps(cfg, priv), WithHandoff(cfg, argv, env))

	return Run(ctx, new(State), funcs...)
}
