// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/pginit/entrypoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRegularFiles(t *testing.T) {
	t.Run("missing dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "initdb")

		files, err := entrypoint.ListRegularFiles(dir, ".sql")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("not a dir", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "initdb")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := entrypoint.ListRegularFiles(path, ".sql")
		require.Error(t, err)
	})

	t.Run("mixed entries", func(t *testing.T) {
		dir := t.TempDir()

		for _, name := range []string{
			"01-schema.sql",
			"02-data.sql",
			".sql",
			"backup.sql.bak",
			"postgresql.conf",
			"sub/03-nested.sql",
		} {
			path := filepath.Join(dir, name)
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte("-- "+name), 0o644))
		}

		require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.sql"), 0o755))
		require.NoError(t, os.Symlink("01-schema.sql", filepath.Join(dir, "link.sql")))
		require.NoError(t, os.Symlink("missing", filepath.Join(dir, "broken.sql")))

		files, err := entrypoint.ListRegularFiles(dir, ".sql")
		require.NoError(t, err)

		expected := []string{
			filepath.Join(dir, "01-schema.sql"),
			filepath.Join(dir, "02-data.sql"),
			filepath.Join(dir, "link.sql"),
		}

		assert.ElementsMatch(t, expected, files)

		files, err = entrypoint.ListRegularFiles(dir, ".conf")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "postgresql.conf")}, files)
	})
}
