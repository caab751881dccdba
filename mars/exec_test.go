// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mars

import (
	"testing"

	"github.com/ondrik/redmars/redcode"
)

func testParams() BattleParameters {
	return BattleParameters{
		CoreSize: 8000, MaxCycles: 8000, MaxProcesses: 8000,
		ReadLimit: 8000, WriteLimit: 8000, MinDistance: 100,
		MaxWarriorLength: 100, Rounds: 1,
	}
}

func mustParse(t *testing.T, src string) redcode.ParsedWarrior {
	t.Helper()
	w, err := redcode.Parse(src, 100, false)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return w
}

// Scenario 1: the Imp. A lone MOV.I $0, $1 keeps copying itself one cell
// forward forever, and its single process always points at pc+1.
func TestImpCopiesItselfForward(t *testing.T) {
	p := testParams()
	c := NewCore(p, nil)
	w := mustParse(t, "MOV.I $0, $1")
	c.Load(w.Instructions, 0, 0)

	q := NewProcessQueue(p.MaxProcesses)
	q.Push(0)

	want := w.Instructions[0]
	for n := 0; n < 20; n++ {
		pc := q.Pop()
		if pc != n {
			t.Fatalf("cycle %d: pc = %d, want %d", n, pc, n)
		}
		out := Execute(c, pc, c.Get(pc))
		if out.Terminate || len(out.Pushes) != 1 || out.Pushes[0] != redcode.Normalize(n+1, p.CoreSize) {
			t.Fatalf("cycle %d: unexpected outcome %+v", n, out)
		}
		q.Push(out.Pushes[0])

		if c.Get(n) != want || c.Get(n+1) != want {
			t.Fatalf("cycle %d: core[%d]=%v core[%d]=%v, want %v in both", n, n, c.Get(n), n+1, c.Get(n+1), want)
		}
	}
}

// Scenario 2: DAT terminates its process immediately.
func TestDatTerminatesProcess(t *testing.T) {
	p := testParams()
	c := NewCore(p, nil)
	w := mustParse(t, "DAT.F #0, #0")
	c.Load(w.Instructions, 0, 0)

	out := Execute(c, 0, c.Get(0))
	if !out.Terminate || len(out.Pushes) != 0 {
		t.Fatalf("DAT outcome = %+v, want Terminate with no pushes", out)
	}
}

// Scenario 3: division by zero terminates the process without touching the
// destination.
func TestDivideByZeroTerminates(t *testing.T) {
	p := testParams()
	c := NewCore(p, nil)
	w := mustParse(t, "DIV.AB #0, $1\nDAT.F #0, #0")
	c.Load(w.Instructions, 0, 0)

	before := c.Get(1)
	out := Execute(c, 0, c.Get(0))
	if !out.Terminate {
		t.Fatalf("DIV.AB by zero outcome = %+v, want Terminate", out)
	}
	if c.Get(1) != before {
		t.Errorf("destination mutated despite divide-by-zero termination: got %v, want unchanged %v", c.Get(1), before)
	}
}

// Scenario 4: SPL never exceeds max_processes. pc+1 is always pushed first
// and wins the capacity check; the A-push is silently dropped. Every cell
// the process walks through holds the same SPL, so it stays alive.
func TestSplAtCapacity(t *testing.T) {
	p := testParams()
	p.MaxProcesses = 1
	c := NewCore(p, nil)
	w := mustParse(t, "SPL.B $0, $0")
	for i := 0; i < 10; i++ {
		c.Load(w.Instructions, i, 0)
	}

	q := NewProcessQueue(p.MaxProcesses)
	q.Push(0)

	for i := 0; i < 10; i++ {
		pc := q.Pop()
		out := Execute(c, pc, c.Get(pc))
		for _, next := range out.Pushes {
			q.Push(next)
		}
		if q.Len() != 1 {
			t.Fatalf("iteration %d: queue length = %d, want 1", i, q.Len())
		}
	}
}

// Scenario 5: JMN.I uses OR across the pair, not AND.
func TestJmnUsesLogicalOr(t *testing.T) {
	p := testParams()
	c := NewCore(p, nil)
	// JMN.I branches because the A-field alone is non-zero, even though the
	// B-field is zero: OR, not AND. The branch target (2) differs from pc+1.
	w := mustParse(t, "JMN.I $2, $1\nDAT.F #1, #0")
	c.Load(w.Instructions, 0, 0)

	out := Execute(c, 0, c.Get(0))
	if out.Terminate || len(out.Pushes) != 1 {
		t.Fatalf("JMN.I outcome = %+v", out)
	}
	aAddr, _ := evalA(c, 0, c.Get(0))
	if out.Pushes[0] != aAddr {
		t.Errorf("JMN.I with one non-zero field should branch to A (%d), got %d", aAddr, out.Pushes[0])
	}
}

func TestMovImmediateModifierI(t *testing.T) {
	p := testParams()
	c := NewCore(p, nil)
	w := mustParse(t, "MOV.I #4, $1\nDAT.F #9, #9")
	c.Load(w.Instructions, 0, 0)

	Execute(c, 0, c.Get(0))
	got := c.Get(1)
	want := redcode.Instruction{Opcode: redcode.DAT, Modifier: redcode.ModF, AField: 4, BField: 4}
	if got != want {
		t.Errorf("MOV.I with immediate A = %v, want %v", got, want)
	}
}

func TestSltModifierXUsesBothPairs(t *testing.T) {
	p := testParams()
	c := NewCore(p, nil)
	// src.A(1) < dst.B(5) and src.B(2) < dst.A(3): both pairs satisfy "<",
	// so SLT.X should skip.
	src := redcode.Instruction{Opcode: redcode.DAT, AField: 1, BField: 2}
	dst := redcode.Instruction{Opcode: redcode.DAT, AField: 3, BField: 5}
	c.Set(1, src)
	c.Set(2, dst)
	in := redcode.Instruction{Opcode: redcode.SLT, Modifier: redcode.ModX, AMode: redcode.Direct, AField: 1, BMode: redcode.Direct, BField: 2}
	c.Set(0, in)

	out := Execute(c, 0, c.Get(0))
	if out.Pushes[0] != 2 {
		t.Errorf("SLT.X should skip to pc+2 (2), got %v", out.Pushes)
	}
}
