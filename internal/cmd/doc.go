// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for pginit. It handles
// logging setup and error handling. All arguments are passed on to the
// server unchanged.
package cmd
