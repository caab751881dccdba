// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package redcode defines the value types of a single Redcode instruction
// and the grammar that turns warrior source text into a sequence of them.
package redcode

import "fmt"

// Opcode identifies the operation a Redcode instruction performs.
type Opcode byte

// The complete set of opcodes accepted by the simulator. SEQ is not a
// distinct opcode: the parser canonicalizes it to CMP before an Instruction
// is ever constructed.
const (
	DAT Opcode = iota
	MOV
	ADD
	SUB
	MUL
	DIV
	MOD
	JMP
	JMZ
	JMN
	DJN
	CMP
	SNE
	SLT
	SPL
	NOP
)

var opcodeName = [...]string{
	DAT: "DAT", MOV: "MOV", ADD: "ADD", SUB: "SUB", MUL: "MUL",
	DIV: "DIV", MOD: "MOD", JMP: "JMP", JMZ: "JMZ", JMN: "JMN",
	DJN: "DJN", CMP: "CMP", SNE: "SNE", SLT: "SLT", SPL: "SPL", NOP: "NOP",
}

func (o Opcode) String() string { return opcodeName[o] }

// Modifier selects which field(s) of the source and destination operands an
// opcode reads and writes.
type Modifier byte

const (
	ModA Modifier = iota
	ModB
	ModAB
	ModBA
	ModF
	ModX
	ModI
)

var modifierName = [...]string{
	ModA: "A", ModB: "B", ModAB: "AB", ModBA: "BA", ModF: "F", ModX: "X", ModI: "I",
}

func (m Modifier) String() string { return modifierName[m] }

// Mode selects how an operand's field is dereferenced, and whether
// pre/postincrement side effects fire during evaluation.
type Mode byte

const (
	Immediate Mode = iota // #
	Direct                // $
	AIndirect             // *
	BIndirect             // @
	APredec               // {
	BPredec               // <
	APostinc              // }
	BPostinc              // >
)

var modeChar = [...]byte{
	Immediate: '#', Direct: '$', AIndirect: '*', BIndirect: '@',
	APredec: '{', BPredec: '<', APostinc: '}', BPostinc: '>',
}

func (m Mode) String() string { return string(modeChar[m]) }

// Instruction is the immutable-shape, in-place-mutable-value representation
// of one Redcode cell. Two Instructions are equal iff all six fields match.
type Instruction struct {
	Opcode   Opcode
	Modifier Modifier
	AMode    Mode
	AField   int
	BMode    Mode
	BField   int
}

// String renders the canonical printable form used by traces and by the
// disassembler: OPCODE.MOD <Amode><Afield>, <Bmode><Bfield>.
func (in Instruction) String() string {
	return fmt.Sprintf("%s.%s %s%d, %s%d",
		in.Opcode, in.Modifier, in.AMode, in.AField, in.BMode, in.BField)
}

// ParsedWarrior is the Parser's output: an ordered, non-empty instruction
// sequence plus the offset (relative to the warrior's own start) at which
// execution begins.
type ParsedWarrior struct {
	Name         string
	Instructions []Instruction
	EntryPoint   int
}

// Equal reports whether two parsed warriors would behave identically once
// loaded into a core: same instructions in the same order, same entry
// point. Warrior name is display-only and is not compared.
func (w ParsedWarrior) Equal(other ParsedWarrior) bool {
	if w.EntryPoint != other.EntryPoint || len(w.Instructions) != len(other.Instructions) {
		return false
	}
	for i, in := range w.Instructions {
		if in != other.Instructions[i] {
			return false
		}
	}
	return true
}
