// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// pginit prepares the PostgreSQL data directory and replaces itself with the
// server. All arguments and the environment are passed to the server.
package main

import (
	"context"
	"os"
	"runtime"

	"github.com/aibor/pginit/internal/cmd"
)

func init() {
	// Supplementary groups are set per thread. Keep the main goroutine on the
	// main thread, so children and the server are started with the dropped
	// credentials.
	runtime.LockOSThread()
}

func main() {
	os.Exit(cmd.Run(
		context.Background(),
		os.Args,
		os.Environ(),
		cmd.IO{
			Stderr: os.Stderr,
		},
	))
}
