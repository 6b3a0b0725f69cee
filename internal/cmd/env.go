// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// DebugEnv is the environment variable that enables debug logging.
const DebugEnv = "PGINIT_DEBUG"

// lookupEnv returns the value of the last occurrence of the given key in env.
func lookupEnv(env []string, key string) (string, bool) {
	var (
		value string
		found bool
	)

	for _, entry := range env {
		k, v, ok := strings.Cut(entry, "=")
		if ok && k == key {
			value, found = v, true
		}
	}

	return value, found
}

// DebugEnabled reports if debug logging is requested by [DebugEnv] in the
// given environment. An unset or empty variable disables debug logging.
func DebugEnabled(env []string) (bool, error) {
	value, found := lookupEnv(env, DebugEnv)
	if !found || value == "" {
		return false, nil
	}

	debug, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", DebugEnv, err)
	}

	return debug, nil
}
