// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// The identity syscalls of [unix] apply to all threads of the process, except
// setgroups. The binary locks its main goroutine to the main thread, which
// all children are forked from.

func setgroups(gids []int) error {
	if err := unix.Setgroups(gids); err != nil {
		return fmt.Errorf("setgroups: %w", err)
	}

	return nil
}

func setresgid(rgid, egid, sgid int) error {
	if err := unix.Setresgid(rgid, egid, sgid); err != nil {
		return fmt.Errorf("setresgid %d: %w", egid, err)
	}

	return nil
}

func setresuid(ruid, euid, suid int) error {
	if err := unix.Setresuid(ruid, euid, suid); err != nil {
		return fmt.Errorf("setresuid %d: %w", euid, err)
	}

	return nil
}

func setuid(uid int) error {
	if err := unix.Setuid(uid); err != nil {
		return fmt.Errorf("setuid %d: %w", uid, err)
	}

	return nil
}

func chown(path string, owner Identity) error {
	if err := unix.Chown(path, owner.UID, owner.GID); err != nil {
		return fmt.Errorf("chown %s: %w", path, err)
	}

	return nil
}

func fchown(fd uintptr, path string, owner Identity) error {
	if err := unix.Fchown(int(fd), owner.UID, owner.GID); err != nil {
		return fmt.Errorf("chown %s: %w", path, err)
	}

	return nil
}

func execve(path string, argv, env []string) error {
	if err := unix.Exec(path, argv, env); err != nil {
		return fmt.Errorf("execve: %w", err)
	}

	return nil
}
