// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package proc spawns short-lived child processes and waits for their
// termination. Output of the children is forwarded line by line.
package proc
