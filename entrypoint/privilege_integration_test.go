// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build integration

package entrypoint

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropPrivileges(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("requires root")
	}

	// Run in a separate process, as the drop is irreversible.
	cmd := exec.Command(testBinary(t))
	cmd.Env = append(os.Environ(), helperEnv+"="+helperDrop)

	output, err := cmd.Output()
	require.NoError(t, err)

	assert.Equal(t, "65534 65534 65534 65534", string(output))
}
