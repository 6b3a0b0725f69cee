// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"io/fs"
	"path/filepath"
)

// Identity is a numeric user and group ID pair.
type Identity struct {
	UID int
	GID int
}

// Config defines the file system layout, the executables and the identity
// used by the entrypoint.
type Config struct {
	// DataDir is the data directory of the database cluster.
	DataDir string

	// DataDirMode is the permission mode the data directory is set to.
	DataDirMode fs.FileMode

	// VersionFile is the name of the file in DataDir whose presence marks
	// the cluster as initialized.
	VersionFile string

	// InputDir contains the seed and config files. It is not an error if it
	// does not exist.
	InputDir string

	// SeedSuffix is the file name suffix of seed files in InputDir.
	SeedSuffix string

	// ConfSuffix is the file name suffix of config files in InputDir.
	ConfSuffix string

	// ConfMode is the permission mode installed config files are created
	// with.
	ConfMode fs.FileMode

	// InitdbBin is the cluster initialization tool.
	InitdbBin string

	// Locale is passed to InitdbBin.
	Locale string

	// EngineBin is the database engine run in single-user mode for seeding.
	EngineBin string

	// Database is the database seed files are applied to.
	Database string

	// ServerBin is the real server the process is replaced with.
	ServerBin string

	// Identity is the unprivileged identity the entrypoint switches to and
	// that owns the data directory.
	Identity Identity

	// ChunkSize is the size of the chunks seed files are fed with.
	ChunkSize int
}

// DefaultConfig returns the configuration for the PostgreSQL container
// image.
func DefaultConfig() Config {
	return Config{
		DataDir:     "/var/lib/postgresql/data",
		DataDirMode: 0o700,
		VersionFile: "PG_VERSION",
		InputDir:    "/initdb",
		SeedSuffix:  ".sql",
		ConfSuffix:  ".conf",
		ConfMode:    0o600,
		InitdbBin:   "initdb",
		Locale:      "en_US.utf8",
		EngineBin:   "postgres",
		Database:    "postgres",
		ServerBin:   "/usr/bin/postgres",
		Identity:    Identity{UID: 999, GID: 999},
		ChunkSize:   4096,
	}
}

// VersionFilePath returns the absolute path of the version marker file.
func (c Config) VersionFilePath() string {
	return filepath.Join(c.DataDir, c.VersionFile)
}

// InitdbArgs returns the arguments for [Config.InitdbBin].
func (c Config) InitdbArgs() []string {
	return []string{"-D", c.DataDir, "--locale=" + c.Locale}
}

// EngineArgs returns the arguments for [Config.EngineBin] in single-user mode.
func (c Config) EngineArgs() []string {
	return []string{"--single", "-D", c.DataDir, c.Database}
}
