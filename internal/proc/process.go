// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/aibor/pginit/internal/exitcode"
	"github.com/aibor/pginit/internal/pipe"
	"golang.org/x/sync/errgroup"
)

// Stream identifies the output stream of a child process.
type Stream string

// Output streams of a child.
const (
	Stdout Stream = "stdout"
	Stderr Stream = "stderr"
)

// OutputFunc is called for each line a child writes to one of its output
// streams.
type OutputFunc func(stream Stream, line string)

// Spec describes a child process.
type Spec struct {
	// Name is used in errors.
	Name string

	// Path of the executable. If it contains no path separator, it is looked
	// up in PATH.
	Path string

	// Args are passed to the executable, without the program name.
	Args []string

	// Stdin is passed to the child as its standard input. It is nil for no
	// input at all.
	Stdin *os.File

	// Output receives the child's output. If nil, the output is discarded.
	Output OutputFunc
}

// Process is a started child process.
type Process struct {
	ctx        context.Context
	spec       Spec
	cmd        *exec.Cmd
	processors errgroup.Group
}

// Start starts the child process described by the given [Spec].
//
// The caller is responsible for closing its own copy of [Spec.Stdin] once
// the process is started. [Process.Wait] must be called to release all
// resources.
func Start(ctx context.Context, spec Spec) (*Process, error) {
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	if spec.Stdin != nil {
		cmd.Stdin = spec.Stdin
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &CommandError{Name: spec.Name, Err: err}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &CommandError{Name: spec.Name, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Name: spec.Name, Err: fmt.Errorf("start: %w", err)}
	}

	process := &Process{
		ctx:  ctx,
		spec: spec,
		cmd:  cmd,
	}

	process.forward(Stdout, stdout)
	process.forward(Stderr, stderr)

	return process, nil
}

func (p *Process) forward(stream Stream, reader io.Reader) {
	output := p.spec.Output
	if output == nil {
		output = func(Stream, string) {}
	}

	p.processors.Go(func() error {
		_, err := pipe.ForwardLines(reader, func(line string) {
			output(stream, line)
		})
		if err != nil {
			return fmt.Errorf("%s: %w", stream, err)
		}

		return nil
	})
}

// Pid returns the process ID of the child.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Wait waits for the output of the child to be consumed completely and for
// the child to terminate.
//
// It returns a [CommandError] if the child did not exit with exit code 0. An
// error of the output forwarding is only returned if the child succeeded.
func (p *Process) Wait() error {
	// Output must be consumed before waiting since [exec.Cmd.Wait] closes the
	// pipes.
	processorsErr := p.processors.Wait()

	err := p.cmd.Wait()
	if stateErr := exitcode.FromProcessState(p.cmd.ProcessState); stateErr != nil {
		err = stateErr

		// [exec.Cmd.Wait] reports a child killed on cancellation as plain
		// exit error.
		if ctxErr := p.ctx.Err(); ctxErr != nil && errors.Is(stateErr, exitcode.ErrSignaled) {
			err = fmt.Errorf("%w: %w", stateErr, ctxErr)
		}
	}

	if err != nil {
		return &CommandError{Name: p.spec.Name, Err: err}
	}

	if processorsErr != nil {
		return &CommandError{
			Name: p.spec.Name,
			Err:  fmt.Errorf("forward output: %w", processorsErr),
		}
	}

	return nil
}

// Run starts the child process described by the given [Spec] and waits for
// its termination.
func Run(ctx context.Context, spec Spec) error {
	process, err := Start(ctx, spec)
	if err != nil {
		return err
	}

	return process.Wait()
}
