// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// CopyFunc defines a function that reads the data from the given reader into
// the given writer.
//
// It may copy the data as is, like [io.Copy], or mutate or filter it as needed.
type CopyFunc func(dst io.Writer, src io.Reader) (int64, error)

var _ CopyFunc = io.Copy

// Chunked returns a [CopyFunc] that reads src in chunks of at most the given
// size and writes each chunk to dst before reading the next one.
//
// Unlike [io.Copy], it never delegates to [io.WriterTo] or [io.ReaderFrom],
// so the chunk size is always respected.
func Chunked(size int) CopyFunc {
	return func(dst io.Writer, src io.Reader) (int64, error) {
		if size < 1 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
		}

		var written int64

		buf := make([]byte, size)

		for {
			n, readErr := src.Read(buf)
			if n > 0 {
				w, err := dst.Write(buf[:n])

				written += int64(w)

				if err != nil {
					return written, fmt.Errorf("write: %w", err)
				}

				if w != n {
					return written, io.ErrShortWrite
				}
			}

			if errors.Is(readErr, io.EOF) {
				return written, nil
			}

			if readErr != nil {
				return written, fmt.Errorf("read: %w", readErr)
			}
		}
	}
}

// Feed copies src into dst using the given [CopyFunc] and closes dst
// afterwards, so the reading side sees EOF.
//
// dst is closed in any case. Errors are returned as [Error] with the given
// name.
func Feed(name string, dst io.WriteCloser, src io.Reader, copyFn CopyFunc) (int64, error) {
	written, err := copyFn(dst, src)

	closeErr := dst.Close()
	if err == nil && closeErr != nil {
		err = fmt.Errorf("close: %w", closeErr)
	}

	if err != nil {
		return written, &Error{Name: name, Err: err}
	}

	return written, nil
}

// LineFunc is called by [ForwardLines] for each line read.
type LineFunc func(line string)

// ForwardLines reads src line by line and calls fn for each non-empty line
// without its line terminator.
//
// A last line without terminator is forwarded as well. Lines have no length
// limit. It returns the number of bytes read.
func ForwardLines(src io.Reader, fn LineFunc) (int64, error) {
	var read int64

	reader := bufio.NewReader(src)

	for {
		line, err := reader.ReadString('\n')

		read += int64(len(line))

		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			fn(line)
		}

		if errors.Is(err, io.EOF) {
			return read, nil
		}

		if err != nil {
			return read, fmt.Errorf("read: %w", err)
		}
	}
}
