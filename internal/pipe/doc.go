// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package pipe provides the data transport between the entrypoint and its
// child processes. It feeds input into a child's stdin in fixed size chunks
// and forwards the child's output line by line.
package pipe
