// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aibor/pginit/internal/exitcode"
	"github.com/aibor/pginit/internal/pipe"
	"github.com/aibor/pginit/internal/proc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestInitdb(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cfg, out := testConfig(t, helperOK)

		require.NoError(t, Initdb(context.Background(), cfg))

		calls := recordedCalls(t, out)
		require.Len(t, calls, 1)
		assert.Equal(t, cfg.InitdbArgs(), calls[0].args)
		assert.Empty(t, calls[0].stdin)
	})

	t.Run("failure", func(t *testing.T) {
		cfg, _ := testConfig(t, helperFailInitdb)

		err := Initdb(context.Background(), cfg)
		require.ErrorIs(t, err, &proc.CommandError{})

		code, _ := exitcode.From(err)
		assert.Equal(t, 3, code)
	})

	t.Run("missing binary", func(t *testing.T) {
		cfg, _ := testConfig(t, helperOK)
		cfg.InitdbBin = filepath.Join(t.TempDir(), "initdb")

		err := Initdb(context.Background(), cfg)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadSeeds(t *testing.T) {
	t.Run("missing input dir", func(t *testing.T) {
		cfg, out := testConfig(t, helperOK)

		require.NoError(t, LoadSeeds(context.Background(), cfg))
		assert.Empty(t, recordedCalls(t, out))
	})

	t.Run("empty input dir", func(t *testing.T) {
		cfg, out := testConfig(t, helperOK)
		writeInputFiles(t, cfg, nil)

		require.NoError(t, LoadSeeds(context.Background(), cfg))
		assert.Empty(t, recordedCalls(t, out))
	})

	t.Run("each file once", func(t *testing.T) {
		cfg, out := testConfig(t, helperOK)

		files := map[string]string{
			"01-schema.sql":   "CREATE TABLE t (id int);\n",
			"02-data.sql":     strings.Repeat("INSERT INTO t VALUES (1);\n", 2000),
			"03-empty.sql":    "",
			"postgresql.conf": "port = 5432\n",
		}
		writeInputFiles(t, cfg, files)

		require.NoError(t, LoadSeeds(context.Background(), cfg))

		calls := recordedCalls(t, out)
		require.Len(t, calls, 3)

		var stdins []string

		for _, call := range calls {
			assert.Equal(t, cfg.EngineArgs(), call.args)
			stdins = append(stdins, call.stdin)
		}

		assert.ElementsMatch(t, []string{
			files["01-schema.sql"],
			files["02-data.sql"],
			files["03-empty.sql"],
		}, stdins)
	})

	t.Run("small chunks", func(t *testing.T) {
		cfg, out := testConfig(t, helperOK)
		cfg.ChunkSize = 7

		content := strings.Repeat("SELECT 42;\n", 100)
		writeInputFiles(t, cfg, map[string]string{"seed.sql": content})

		require.NoError(t, LoadSeeds(context.Background(), cfg))

		calls := recordedCalls(t, out)
		require.Len(t, calls, 1)
		assert.Equal(t, content, calls[0].stdin)
	})

	t.Run("failure stops processing", func(t *testing.T) {
		cfg, out := testConfig(t, helperFailSeed)

		writeInputFiles(t, cfg, map[string]string{
			"01-schema.sql": "CREATE TABLE t (id int);\n",
			"02-data.sql":   "INSERT INTO t VALUES (1);\n",
		})

		err := LoadSeeds(context.Background(), cfg)
		require.ErrorIs(t, err, &proc.CommandError{})
		require.ErrorIs(t, err, exitcode.Error(0))

		assert.Len(t, recordedCalls(t, out), 1)
	})

	t.Run("missing engine", func(t *testing.T) {
		cfg, _ := testConfig(t, helperOK)
		cfg.EngineBin = filepath.Join(t.TempDir(), "postgres")

		writeInputFiles(t, cfg, map[string]string{"seed.sql": "SELECT 1;\n"})

		err := LoadSeeds(context.Background(), cfg)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestApplySeed_MissingFile(t *testing.T) {
	cfg, out := testConfig(t, helperOK)

	err := ApplySeed(context.Background(), cfg, filepath.Join(cfg.InputDir, "missing.sql"))
	require.ErrorIs(t, err, os.ErrNotExist)

	assert.Empty(t, recordedCalls(t, out), "engine must not be started")
}

func TestApplySeed_InputNotConsumed(t *testing.T) {
	// Larger than the pipe buffer, so feeding fails once the engine is gone.
	content := strings.Repeat("INSERT INTO t VALUES (1);\n", 40000)

	t.Run("engine failure wins", func(t *testing.T) {
		cfg, _ := testConfig(t, helperSeedIgnoreInputFail)
		writeInputFiles(t, cfg, map[string]string{"seed.sql": content})

		err := ApplySeed(context.Background(), cfg, filepath.Join(cfg.InputDir, "seed.sql"))
		require.ErrorIs(t, err, &proc.CommandError{})
		require.ErrorIs(t, err, exitcode.Error(0))
		assert.NotErrorIs(t, err, &pipe.Error{})

		code, _ := exitcode.From(err)
		assert.Equal(t, 3, code)
	})

	t.Run("engine success", func(t *testing.T) {
		cfg, _ := testConfig(t, helperSeedIgnoreInput)
		writeInputFiles(t, cfg, map[string]string{"seed.sql": content})

		err := ApplySeed(context.Background(), cfg, filepath.Join(cfg.InputDir, "seed.sql"))
		require.ErrorIs(t, err, &pipe.Error{})
		require.ErrorIs(t, err, unix.EPIPE)
	})
}
