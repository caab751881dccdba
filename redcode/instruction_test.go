// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package redcode

import "testing"

func TestInstructionString(t *testing.T) {
	in := Instruction{Opcode: MOV, Modifier: ModI, AMode: Direct, AField: 0, BMode: Direct, BField: 1}
	got := in.String()
	want := "MOV.I $0, $1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOpcodeString(t *testing.T) {
	cases := map[Opcode]string{DAT: "DAT", MOV: "MOV", DJN: "DJN", SLT: "SLT", NOP: "NOP"}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Opcode(%d).String() = %q, want %q", op, got, want)
		}
	}
}

func TestModeString(t *testing.T) {
	cases := map[Mode]string{Immediate: "#", Direct: "$", AIndirect: "*", BIndirect: "@",
		APredec: "{", BPredec: "<", APostinc: "}", BPostinc: ">"}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", m, got, want)
		}
	}
}

func TestParsedWarriorEqual(t *testing.T) {
	a := ParsedWarrior{
		Name:         "imp",
		EntryPoint:   0,
		Instructions: []Instruction{{Opcode: MOV, Modifier: ModI, AMode: Direct, BMode: Direct, BField: 1}},
	}
	b := a
	b.Name = "different name, same behavior"
	if !a.Equal(b) {
		t.Error("warriors differing only in Name should be Equal")
	}

	c := a
	c.EntryPoint = 1
	if a.Equal(c) {
		t.Error("warriors with different entry points should not be Equal")
	}

	d := a
	d.Instructions = []Instruction{{Opcode: DAT, Modifier: ModF}}
	if a.Equal(d) {
		t.Error("warriors with different instructions should not be Equal")
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ x, m, want int }{
		{0, 8000, 0},
		{8000, 8000, 0},
		{-1, 8000, 7999},
		{-8001, 8000, 7999},
		{4000, 8000, 4000},
	}
	for _, c := range cases {
		if got := Normalize(c.x, c.m); got != c.want {
			t.Errorf("Normalize(%d, %d) = %d, want %d", c.x, c.m, got, c.want)
		}
	}
}

func TestFold(t *testing.T) {
	cases := []struct{ offset, limit, want int }{
		{0, 8000, 0},
		{4000, 8000, 4000},
		{3999, 8000, 3999},
		{4001, 8000, -3999},
		{-1, 8000, -1},
	}
	for _, c := range cases {
		if got := Fold(c.offset, c.limit); got != c.want {
			t.Errorf("Fold(%d, %d) = %d, want %d", c.offset, c.limit, got, c.want)
		}
	}
}
