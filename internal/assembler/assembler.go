// ledgerprint/pdf - generate printable PDF invoices
// Copyright (C) 2026  The ledgerprint authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package assembler collects the bytes of a PDF file while it is written.
//
// The serializer writes to an [Assembler] in many small chunks.  The
// consumer waits in [Assembler.Finalize] until the writer closes the
// assembler, and then receives the complete file as one byte slice.
package assembler

import (
	"context"
	"errors"
	"sync"
)

// ErrComplete is returned when data is written after the assembler has been
// closed.
var ErrComplete = errors.New("assembler: write after close")

// Assembler is an append-only in-memory file.
// Writing is done by a single producer, Finalize may be called from any
// goroutine.
//
// This type implements the [io.WriteCloser] interface.
type Assembler struct {
	mu     sync.Mutex
	chunks [][]byte
	size   int
	err    error
	closed bool

	done chan struct{}
}

// New creates a new Assembler in the building state.
func New() *Assembler {
	return &Assembler{
		done: make(chan struct{}),
	}
}

// Write appends a copy of p to the file.
// This implements the [io.Writer] interface.
func (a *Assembler) Write(p []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return 0, ErrComplete
	}
	if len(p) == 0 {
		return 0, nil
	}

	chunk := make([]byte, len(p))
	copy(chunk, p)
	a.chunks = append(a.chunks, chunk)
	a.size += len(p)
	return len(p), nil
}

// Close marks the file as complete.  Calling Close more than once has no
// effect.
// This implements the [io.Closer] interface.
func (a *Assembler) Close() error {
	a.CloseWithError(nil)
	return nil
}

// CloseWithError marks the file as complete.  If err is not nil, Finalize
// returns err instead of the file contents.  Only the first call to
// Close or CloseWithError has an effect.
func (a *Assembler) CloseWithError(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.closed = true
	a.err = err
	if err != nil {
		a.chunks = nil
	}
	close(a.done)
}

// Finalize waits until the assembler is closed and returns the complete
// file.  If ctx is cancelled first, ctx.Err() is returned; partial files are
// never returned.
func (a *Assembler) Finalize(ctx context.Context) ([]byte, error) {
	select {
	case <-a.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.err != nil {
		return nil, a.err
	}
	res := make([]byte, 0, a.size)
	for _, chunk := range a.chunks {
		res = append(res, chunk...)
	}
	return res, nil
}

// Done returns a channel which is closed when the assembler is complete.
func (a *Assembler) Done() <-chan struct{} {
	return a.done
}

// Chunks returns the number of chunks written so far.
func (a *Assembler) Chunks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.chunks)
}

// Len returns the number of bytes written so far.
func (a *Assembler) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.size
}
