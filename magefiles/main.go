// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/magefile/mage/target"
)

const pkg = "github.com/aibor/pginit/cmd/pginit"

var env map[string]string

func init() {
	env = map[string]string{
		"CGO_ENABLED": "0",
	}

	bindir, exists := os.LookupEnv("BINDIR")
	if !exists {
		bindir = "./bin"
	}

	if p, err := filepath.Abs(bindir); err == nil {
		bindir = p
	}

	env["BINDIR"] = bindir
}

// Build a static pginit binary into the bin directory.
func Build() error {
	path := filepath.Join(env["BINDIR"], "pginit")

	changed, err := target.Dir(path, "cmd", "entrypoint", "internal", "go.mod")
	if err != nil {
		return err
	}

	if !changed {
		return nil
	}

	return sh.RunWithV(env, "go", "build",
		"-trimpath",
		"-ldflags", "-s -w",
		"-o", path,
		pkg,
	)
}

// Run unit tests.
func Test() error {
	return sh.RunV("go", "test", "-race", "-cover", "./...")
}

// Run tests that need root, like the privilege drop, with sudo.
func IntegrationTest() error {
	mg.Deps(Test)

	return sh.RunV("go", "test",
		"-tags", "integration",
		"-exec", "sudo",
		"./entrypoint",
	)
}

// Remove volatile files.
func Clean() error {
	return sh.Rm(env["BINDIR"])
}
