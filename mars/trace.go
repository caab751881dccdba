// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mars

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ondrik/redmars/redcode"
)

// Tracer is the domain analogue of the teacher's cpu.Debugger: an object
// attached to one Core for the lifetime of one round, opened lazily, never
// a package-level variable. A nil *Tracer costs nothing on the hot path
// because every call site checks for nil before touching it.
type Tracer struct {
	w *bufio.Writer
	f *os.File
}

// NewTracer opens path for appending and returns a Tracer that writes to
// it. Callers typically derive path from the REDCODE_TRACE_FILE
// environment variable (see the host package) rather than hardcoding it.
func NewTracer(path string) (*Tracer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open trace file: %w", err)
	}
	return &Tracer{w: bufio.NewWriter(f), f: f}, nil
}

// Close flushes and closes the underlying file. Safe to call on a nil
// Tracer.
func (t *Tracer) Close() error {
	if t == nil {
		return nil
	}
	if err := t.w.Flush(); err != nil {
		t.f.Close()
		return err
	}
	return t.f.Close()
}

func (t *Tracer) step(pc int, in redcode.Instruction, aAddr int, src redcode.Instruction, bAddr int, dst redcode.Instruction) {
	fmt.Fprintf(t.w, "PC=%d %s | A=%d {%s}, B=%d {%s}\n", pc, in, aAddr, src, bAddr, dst)
}

func (t *Tracer) write(addr int, in redcode.Instruction) {
	fmt.Fprintf(t.w, "-> WRITE @%d {%s}\n", addr, in)
}
