// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package entrypoint provides the steps of a PostgreSQL container entrypoint.
//
// On first start, the data directory is initialized with initdb, SQL seed
// files are applied with single-user mode postgres instances and config files
// are copied into the data directory. On later starts only the config files
// are installed. In any case, privileges are dropped before any operator
// supplied file is read and the process is replaced with the real server.
//
// The steps are [Func]s run in order by [Run]. [Boot] runs all of them.
package entrypoint
