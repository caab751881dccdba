// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mars

import "github.com/ondrik/redmars/redcode"

// evalOperand resolves one operand's effective address and, for
// pre/postincrement modes, returns the side-effect to apply later. field is
// the instruction's raw a_field or b_field; limit is read_limit for an
// A-operand, write_limit for a B-operand. Immediate operands touch no
// memory and carry no side effect.
func evalOperand(c *Core, pc, field int, mode redcode.Mode, limit int) (addr int, postinc func(*Core)) {
	if mode == redcode.Immediate {
		return pc, nil
	}

	size := c.Size()
	primary := redcode.Fold(field, limit)
	intermediate := redcode.Normalize(pc+primary, size)

	if mode == redcode.Direct {
		return intermediate, nil
	}

	aSide := mode == redcode.AIndirect || mode == redcode.APredec || mode == redcode.APostinc
	cell := c.Get(intermediate)

	if mode == redcode.APredec || mode == redcode.BPredec {
		if aSide {
			cell.AField = redcode.Normalize(cell.AField-1, size)
		} else {
			cell.BField = redcode.Normalize(cell.BField-1, size)
		}
		c.Set(intermediate, cell)
	}

	var secondary int
	if aSide {
		secondary = cell.AField
	} else {
		secondary = cell.BField
	}
	addr = redcode.Normalize(pc+redcode.Fold(primary+secondary, limit), size)

	if mode == redcode.APostinc || mode == redcode.BPostinc {
		postinc = func(c *Core) {
			cur := c.Get(intermediate)
			if aSide {
				cur.AField = redcode.Normalize(cur.AField+1, size)
			} else {
				cur.BField = redcode.Normalize(cur.BField+1, size)
			}
			c.Set(intermediate, cur)
		}
	}
	return addr, postinc
}

// evalA resolves the A-operand of in at pc, applying its postincrement (if
// any) before returning, so that a subsequent evalB call for the same
// instruction observes the updated cell.
func evalA(c *Core, pc int, in redcode.Instruction) (addr int, src redcode.Instruction) {
	if in.AMode == redcode.Immediate {
		return pc, redcode.Instruction{AField: in.AField, BField: in.AField}
	}
	addr, postinc := evalOperand(c, pc, in.AField, in.AMode, c.params.ReadLimit)
	src = c.Get(addr)
	if postinc != nil {
		postinc(c)
	}
	return addr, src
}

// evalB resolves the B-operand of in at pc. The caller must snapshot
// core[addr] before writing it, and must invoke the returned postinc (if
// non-nil) only after that write.
func evalB(c *Core, pc int, in redcode.Instruction) (addr int, postinc func(*Core)) {
	return evalOperand(c, pc, in.BField, in.BMode, c.params.WriteLimit)
}
