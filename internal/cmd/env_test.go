// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"strconv"
	"testing"

	"github.com/aibor/pginit/internal/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		name        string
		env         []string
		expected    bool
		expectedErr error
	}{
		{
			name: "unset",
			env:  []string{"PATH=/usr/bin"},
		},
		{
			name: "empty",
			env:  []string{"PGINIT_DEBUG="},
		},
		{
			name:     "true",
			env:      []string{"PGINIT_DEBUG=true"},
			expected: true,
		},
		{
			name:     "one",
			env:      []string{"PGINIT_DEBUG=1"},
			expected: true,
		},
		{
			name: "false",
			env:  []string{"PGINIT_DEBUG=0"},
		},
		{
			name:     "last wins",
			env:      []string{"PGINIT_DEBUG=0", "PGINIT_DEBUG=1"},
			expected: true,
		},
		{
			name: "prefix only",
			env:  []string{"PGINIT_DEBUGGING=1"},
		},
		{
			name:        "invalid",
			env:         []string{"PGINIT_DEBUG=maybe"},
			expectedErr: strconv.ErrSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := cmd.DebugEnabled(tt.env)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, actual)
		})
	}
}
