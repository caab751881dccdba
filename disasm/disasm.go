// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm renders Redcode instructions and warriors in the
// canonical one-line form, with an address prefix; the interactive host's
// list command uses Warrior.
package disasm

import (
	"fmt"
	"strings"

	"github.com/ondrik/redmars/mars"
	"github.com/ondrik/redmars/redcode"
)

// Instruction disassembles the cell at addr in c, returning the rendered
// line and the address of the next cell.
func Instruction(c *mars.Core, addr int) (line string, next int) {
	in := c.Get(addr)
	return fmt.Sprintf("%04d  %s", addr, in), redcode.Normalize(addr+1, c.Size())
}

// Core renders n consecutive cells of c starting at addr, one per line.
func Core(c *mars.Core, addr, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		line, next := Instruction(c, addr)
		b.WriteString(line)
		b.WriteByte('\n')
		addr = next
	}
	return b.String()
}

// Warrior renders every instruction of w, one per line, marking the entry
// point.
func Warrior(w redcode.ParsedWarrior) string {
	var b strings.Builder
	for i, in := range w.Instructions {
		marker := "  "
		if i == w.EntryPoint {
			marker = "->"
		}
		fmt.Fprintf(&b, "%s %04d  %s\n", marker, i, in)
	}
	return b.String()
}
