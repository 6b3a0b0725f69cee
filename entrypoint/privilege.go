// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// parentDirMode is the mode missing parents of the data directory are created
// with.
const parentDirMode = 0o755

type identityOps struct {
	geteuid   func() int
	setgroups func(gids []int) error
	setresgid func(rgid, egid, sgid int) error
	setresuid func(ruid, euid, suid int) error
	setuid    func(uid int) error
	chown     func(path string, owner Identity) error
}

var systemIdentityOps = identityOps{
	geteuid:   unix.Geteuid,
	setgroups: setgroups,
	setresgid: setresgid,
	setresuid: setresuid,
	setuid:    setuid,
	chown:     chown,
}

// Privileged is the capability to run operations with the identity the
// process was started with.
//
// It is consumed by [Privileged.Drop]. Once dropped, all its operations fail
// with [ErrPrivilegesDropped] and there is no way to acquire it again.
type Privileged struct {
	ops     identityOps
	dropped bool
}

// AcquirePrivileges returns the capability for the identity the process was
// started with. It must be called once at start.
func AcquirePrivileges() *Privileged {
	return &Privileged{ops: systemIdentityOps}
}

func (p *Privileged) check() error {
	if p == nil || p.dropped {
		return ErrPrivilegesDropped
	}

	return nil
}

// PrepareDataDir creates the data directory if it does not exist and hands
// it over to the configured identity.
func (p *Privileged) PrepareDataDir(cfg Config) error {
	if err := p.check(); err != nil {
		return err
	}

	// Parents must stay traversable for the identity after the drop.
	parent := filepath.Dir(cfg.DataDir)
	if err := os.MkdirAll(parent, parentDirMode); err != nil {
		return fmt.Errorf("mkdir %s: %w", parent, err)
	}

	err := os.Mkdir(cfg.DataDir, cfg.DataDirMode)
	if err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("mkdir %s: %w", cfg.DataDir, err)
	}

	if err := p.ops.chown(cfg.DataDir, cfg.Identity); err != nil {
		return err
	}

	// Mkdir is subject to the umask and the directory may exist already.
	if err := os.Chmod(cfg.DataDir, cfg.DataDirMode); err != nil {
		return fmt.Errorf("chmod %s: %w", cfg.DataDir, err)
	}

	return nil
}

// Drop switches supplementary groups, group ID and user ID to the given
// identity, in this order.
//
// The capability is consumed, even if switching fails. Supplementary groups
// are only set if the process runs as root. If the target is not root, it is
// verified that root privileges cannot be regained.
func (p *Privileged) Drop(identity Identity) error {
	if err := p.check(); err != nil {
		return err
	}

	p.dropped = true

	if p.ops.geteuid() == 0 {
		if err := p.ops.setgroups([]int{identity.GID}); err != nil {
			return err
		}
	}

	gid := identity.GID
	if err := p.ops.setresgid(gid, gid, gid); err != nil {
		return err
	}

	uid := identity.UID
	if err := p.ops.setresuid(uid, uid, uid); err != nil {
		return err
	}

	if uid != 0 && p.ops.setuid(0) == nil {
		return ErrStillPrivileged
	}

	return nil
}

// WithDataDir returns a [Func] that wraps [Privileged.PrepareDataDir].
func WithDataDir(cfg Config, priv *Privileged) Func {
	return func(_ context.Context, _ *State) error {
		return priv.PrepareDataDir(cfg)
	}
}

// WithPrivilegeDrop returns a [Func] that wraps [Privileged.Drop].
func WithPrivilegeDrop(cfg Config, priv *Privileged) Func {
	return func(_ context.Context, _ *State) error {
		if err := priv.Drop(cfg.Identity); err != nil {
			return fmt.Errorf("drop privileges: %w", err)
		}

		slog.Debug("Dropped privileges",
			slog.Int("uid", cfg.Identity.UID),
			slog.Int("gid", cfg.Identity.GID))

		return nil
	}
}
