// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm

import (
	"strings"
	"testing"

	"github.com/ondrik/redmars/mars"
	"github.com/ondrik/redmars/redcode"
)

func testParams() mars.BattleParameters {
	return mars.BattleParameters{
		CoreSize: 8000, MaxCycles: 8000, MaxProcesses: 8000,
		ReadLimit: 8000, WriteLimit: 8000, MinDistance: 100,
		MaxWarriorLength: 100, Rounds: 1,
	}
}

func TestInstructionAddressAndContent(t *testing.T) {
	c := mars.NewCore(testParams(), nil)
	in := redcode.Instruction{Opcode: redcode.MOV, Modifier: redcode.ModI, AMode: redcode.Direct, BMode: redcode.Direct, BField: 1}
	c.Set(5, in)

	line, next := Instruction(c, 5)
	if next != 6 {
		t.Errorf("next = %d, want 6", next)
	}
	if !strings.Contains(line, "0005") || !strings.Contains(line, in.String()) {
		t.Errorf("line = %q, want it to contain address 0005 and %q", line, in.String())
	}
}

func TestInstructionWrapsAroundCore(t *testing.T) {
	c := mars.NewCore(testParams(), nil)
	_, next := Instruction(c, c.Size()-1)
	if next != 0 {
		t.Errorf("next = %d, want 0 (wrap)", next)
	}
}

func TestCoreRendersRequestedLines(t *testing.T) {
	c := mars.NewCore(testParams(), nil)
	out := Core(c, 0, 3)
	if n := strings.Count(out, "\n"); n != 3 {
		t.Errorf("rendered %d lines, want 3", n)
	}
}

func TestWarriorMarksEntryPoint(t *testing.T) {
	w := redcode.ParsedWarrior{
		Instructions: []redcode.Instruction{
			{Opcode: redcode.MOV, Modifier: redcode.ModI, AMode: redcode.Direct, BMode: redcode.Direct, BField: 1},
			{Opcode: redcode.JMP, Modifier: redcode.ModB, AMode: redcode.Direct, AField: -1},
		},
		EntryPoint: 1,
	}

	out := Warrior(w)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "  ") {
		t.Errorf("line 0 = %q, want non-entry marker prefix", lines[0])
	}
	if !strings.HasPrefix(lines[1], "->") {
		t.Errorf("line 1 = %q, want entry-point marker prefix", lines[1])
	}
}
