// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mars

import "github.com/ondrik/redmars/redcode"

// Core is the circular memory array one round plays out on. It is created
// fresh for every round; nothing about it survives past that round except
// the scores it produced.
type Core struct {
	cells  []redcode.Instruction
	params BattleParameters
	tracer *Tracer // nil when tracing is disabled; checked, never dereferenced unconditionally
}

var defaultCell = redcode.Instruction{Opcode: redcode.DAT, Modifier: redcode.ModF}

// NewCore allocates a core of params.CoreSize cells, each initialized to
// DAT.F $0, $0, and attaches tracer (which may be nil).
func NewCore(params BattleParameters, tracer *Tracer) *Core {
	cells := make([]redcode.Instruction, params.CoreSize)
	for i := range cells {
		cells[i] = defaultCell
	}
	return &Core{cells: cells, params: params, tracer: tracer}
}

// Size returns the core's cell count.
func (c *Core) Size() int { return len(c.cells) }

// Get returns the instruction at addr, which must already be normalized.
func (c *Core) Get(addr int) redcode.Instruction { return c.cells[addr] }

// Set overwrites the instruction at addr, which must already be normalized.
func (c *Core) Set(addr int, in redcode.Instruction) {
	c.cells[addr] = in
	if c.tracer != nil {
		c.tracer.write(addr, in)
	}
}

// Load copies instructions into the core starting at offset start,
// wrapping via Normalize, and returns the entry address corresponding to
// entryPoint.
func (c *Core) Load(instructions []redcode.Instruction, start, entryPoint int) int {
	size := c.Size()
	for i, in := range instructions {
		addr := redcode.Normalize(start+i, size)
		c.cells[addr] = in
	}
	return redcode.Normalize(start+entryPoint, size)
}
