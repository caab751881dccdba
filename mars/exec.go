// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mars

import (
	"fmt"

	"github.com/ondrik/redmars/redcode"
)

// Outcome is what executing one instruction does to its owner's process
// queue: either the process terminates (no push), or it schedules zero or
// more program counters, in order. A scheduled pc may still be dropped by
// ProcessQueue.Push if the queue is already at capacity; this is how SPL's
// at-capacity behavior falls out of the ordinary push path rather than
// needing its own capacity check.
type Outcome struct {
	Terminate bool
	Pushes    []int
}

func push(pc int) Outcome { return Outcome{Pushes: []int{pc}} }

// Execute runs the instruction at pc and reports what should happen to the
// owner's process queue next. It is the sole place that mutates the core on
// behalf of a running process.
func Execute(c *Core, pc int, in redcode.Instruction) Outcome {
	size := c.Size()
	next := redcode.Normalize(pc+1, size)
	skip := redcode.Normalize(pc+2, size)

	if in.Opcode == redcode.DAT {
		return Outcome{Terminate: true}
	}

	aAddr, src := evalA(c, pc, in)
	bAddr, bPostinc := evalB(c, pc, in)
	dst := c.Get(bAddr)

	if c.tracer != nil {
		c.tracer.step(pc, in, aAddr, src, bAddr, dst)
	}

	var out Outcome
	switch in.Opcode {
	case redcode.NOP:
		out = push(next)
	case redcode.JMP:
		out = push(aAddr)
	case redcode.MOV:
		out = execMOV(c, in, src, bAddr, dst, next)
	case redcode.ADD, redcode.SUB, redcode.MUL:
		out = execArith(c, in, src, bAddr, dst, next)
	case redcode.DIV, redcode.MOD:
		out = execDivMod(c, in, src, bAddr, dst, next)
	case redcode.JMZ, redcode.JMN:
		out = execJmpCond(in, aAddr, dst, next, in.Opcode)
	case redcode.DJN:
		out = execDJN(c, in, aAddr, bAddr, dst, next)
	case redcode.CMP, redcode.SNE:
		out = execCompareEqual(in, src, dst, next, skip, in.Opcode)
	case redcode.SLT:
		out = execSLT(in, src, dst, next, skip)
	case redcode.SPL:
		out = Outcome{Pushes: []int{next, aAddr}}
	default:
		panic(fmt.Sprintf("mars: unhandled opcode %v", in.Opcode))
	}

	if bPostinc != nil {
		bPostinc(c)
	}
	return out
}

// pair names one (source field, destination field) combination touched by
// an arithmetic/test/compare opcode for a given modifier.
type pair struct{ srcA, dstA bool }

// modifierPairs enumerates the field pairs a modifier selects, in the order
// they must be applied. ModI is listed alongside ModF because every opcode
// except MOV and CMP/SNE treats I identically to F (§4.5); those three
// special-case ModI before ever consulting this table.
func modifierPairs(m redcode.Modifier) []pair {
	switch m {
	case redcode.ModA:
		return []pair{{true, true}}
	case redcode.ModB:
		return []pair{{false, false}}
	case redcode.ModAB:
		return []pair{{true, false}}
	case redcode.ModBA:
		return []pair{{false, true}}
	case redcode.ModF, redcode.ModI:
		return []pair{{true, true}, {false, false}}
	case redcode.ModX:
		return []pair{{true, false}, {false, true}}
	}
	return nil
}

func getField(in redcode.Instruction, isA bool) int {
	if isA {
		return in.AField
	}
	return in.BField
}

func setField(in *redcode.Instruction, isA bool, v int) {
	if isA {
		in.AField = v
	} else {
		in.BField = v
	}
}

func execMOV(c *Core, in redcode.Instruction, src redcode.Instruction, bAddr int, dst redcode.Instruction, next int) Outcome {
	if in.Modifier == redcode.ModI {
		if in.AMode == redcode.Immediate {
			// Resolved open question (SPEC_FULL.md §9.1): MOV.I with an
			// immediate A-operand behaves like MOV.F, since an immediate
			// has no real source instruction to copy wholesale.
			result := dst
			result.AField = src.AField
			result.BField = src.AField
			c.Set(bAddr, result)
			return push(next)
		}
		c.Set(bAddr, src)
		return push(next)
	}

	result := dst
	for _, p := range modifierPairs(in.Modifier) {
		setField(&result, p.dstA, getField(src, p.srcA))
	}
	c.Set(bAddr, result)
	return push(next)
}

func execArith(c *Core, in redcode.Instruction, src redcode.Instruction, bAddr int, dst redcode.Instruction, next int) Outcome {
	size := c.Size()
	result := dst
	for _, p := range modifierPairs(in.Modifier) {
		s, d := getField(src, p.srcA), getField(result, p.dstA)
		var v int
		switch in.Opcode {
		case redcode.ADD:
			v = d + s
		case redcode.SUB:
			v = d - s
		case redcode.MUL:
			v = d * s
		}
		setField(&result, p.dstA, redcode.Normalize(v, size))
	}
	c.Set(bAddr, result)
	return push(next)
}

func execDivMod(c *Core, in redcode.Instruction, src redcode.Instruction, bAddr int, dst redcode.Instruction, next int) Outcome {
	pairs := modifierPairs(in.Modifier)
	for _, p := range pairs {
		if getField(src, p.srcA) == 0 {
			return Outcome{Terminate: true}
		}
	}
	size := c.Size()
	result := dst
	for _, p := range pairs {
		s, d := getField(src, p.srcA), getField(result, p.dstA)
		var v int
		if in.Opcode == redcode.DIV {
			v = d / s
		} else {
			v = d % s
		}
		setField(&result, p.dstA, redcode.Normalize(v, size))
	}
	c.Set(bAddr, result)
	return push(next)
}

// destWhichFields reports which destination field(s) JMZ/JMN/DJN test (or,
// for DJN, decrement): the A-field for A/BA, the B-field for B/AB, both for
// F/I/X.
func destWhichFields(m redcode.Modifier) []bool {
	switch m {
	case redcode.ModA, redcode.ModBA:
		return []bool{true}
	case redcode.ModB, redcode.ModAB:
		return []bool{false}
	default:
		return []bool{true, false}
	}
}

func execJmpCond(in redcode.Instruction, aAddr int, dst redcode.Instruction, next int, op redcode.Opcode) Outcome {
	allZero, anyNonZero := true, false
	for _, isA := range destWhichFields(in.Modifier) {
		if getField(dst, isA) != 0 {
			allZero = false
			anyNonZero = true
		}
	}
	branch := false
	if op == redcode.JMZ {
		branch = allZero
	} else {
		branch = anyNonZero
	}
	if branch {
		return push(aAddr)
	}
	return push(next)
}

func execDJN(c *Core, in redcode.Instruction, aAddr, bAddr int, dst redcode.Instruction, next int) Outcome {
	size := c.Size()
	result := dst
	which := destWhichFields(in.Modifier)
	for _, isA := range which {
		setField(&result, isA, redcode.Normalize(getField(result, isA)-1, size))
	}
	c.Set(bAddr, result)

	anyNonZero := false
	for _, isA := range which {
		if getField(result, isA) != 0 {
			anyNonZero = true
		}
	}
	if anyNonZero {
		return push(aAddr)
	}
	return push(next)
}

func execCompareEqual(in redcode.Instruction, src, dst redcode.Instruction, next, skip int, op redcode.Opcode) Outcome {
	var equal bool
	if in.Modifier == redcode.ModI {
		equal = src == dst
	} else {
		equal = true
		for _, p := range modifierPairs(in.Modifier) {
			if getField(src, p.srcA) != getField(dst, p.dstA) {
				equal = false
				break
			}
		}
	}

	doSkip := equal
	if op == redcode.SNE {
		doSkip = !equal
	}
	if doSkip {
		return push(skip)
	}
	return push(next)
}

// execSLT also covers modifier X: SPEC_FULL.md §9.2 extends the same
// two-pair-AND rule the base table states only for F/I, by symmetry with
// how X is defined everywhere else.
func execSLT(in redcode.Instruction, src, dst redcode.Instruction, next, skip int) Outcome {
	less := true
	for _, p := range modifierPairs(in.Modifier) {
		if !(getField(src, p.srcA) < getField(dst, p.dstA)) {
			less = false
			break
		}
	}
	if less {
		return push(skip)
	}
	return push(next)
}
