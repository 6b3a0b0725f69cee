// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ListRegularFiles lists all regular files directly in the given directory
// whose name ends with the given suffix. A name that consists of the suffix
// only does not match.
//
// Files are returned in the order the directory yields them. They are not
// sorted. Symbolic links are followed. If the directory does not exist, no
// files and no error are returned.
func ListRegularFiles(dir, suffix string) ([]string, error) {
	handle, err := os.Open(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("open dir: %w", err)
	}
	defer handle.Close()

	// Unlike [os.ReadDir], [os.File.ReadDir] does not sort.
	entries, err := handle.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string

	for _, entry := range entries {
		name := entry.Name()
		if len(name) <= len(suffix) || !strings.HasSuffix(name, suffix) {
			continue
		}

		path := filepath.Join(dir, name)

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		files = append(files, path)
	}

	return files, nil
}
