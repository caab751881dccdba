// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package redcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a single rule violation found while parsing a warrior.
// Unlike a side-channel diagnostic print, ParseError's Error method is
// itself the caller-facing message: line and column are 1-based.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Msg)
}

func parseErr(c cursor, format string, args ...interface{}) error {
	return &ParseError{Line: c.line, Col: c.col + 1, Msg: fmt.Sprintf(format, args...)}
}

// Parse turns warrior source text into a ParsedWarrior. Fields are returned
// as written, unnormalized; placement happens later. maxWarriorLength bounds
// the instruction count and strict1988 restricts the accepted opcode,
// modifier and mode set. Parse never guesses at an ambiguous construct:
// every line either matches the grammar below or Parse returns an error
// describing the first violation encountered, top to bottom, left to right.
// Errors tied to a token are *ParseError values carrying its line and
// column; the whole-warrior checks (empty, too long, undefined ORG label)
// and the strict-mode addressing-mode check return plain errors.
func Parse(text string, maxWarriorLength int, strict1988 bool) (ParsedWarrior, error) {
	var (
		instructions []Instruction
		labels       = map[string]int{}
		orgLabel     string
		haveOrg      bool
		seenContent  bool
		name         string
	)

	install := func(name string, tok cursor) error {
		if _, dup := labels[name]; dup {
			return parseErr(tok, "duplicate label %q", name)
		}
		labels[name] = len(instructions)
		return nil
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, raw := range lines {
		if name == "" {
			if n, ok := parseNameComment(raw); ok {
				name = n
			}
		}

		c := newCursor(i+1, raw)
		body, _ := c.consumeUntil(isCommentStart)
		body = body.skipSpace()
		if body.isEmpty() {
			continue
		}

		word, remain := body.consumeWhile(isWordChar)

		if strings.EqualFold(word.str, "ORG") && !remain.startsWith(isDot) && !remain.startsWith(isColon) {
			if seenContent {
				return ParsedWarrior{}, parseErr(word, "ORG directive must be the first line of the warrior")
			}
			seenContent = true
			rest := remain.skipSpace()
			label, rest2 := rest.consumeWhile(isWordChar)
			rest2 = rest2.skipSpace()
			if label.isEmpty() || !rest2.isEmpty() {
				return ParsedWarrior{}, parseErr(remain, "ORG requires exactly one label")
			}
			haveOrg, orgLabel = true, label.str
			continue
		}
		seenContent = true

		var instrBody cursor
		switch {
		case remain.startsWith(isDot):
			instrBody = body

		case remain.startsWith(isColon):
			if word.isEmpty() {
				return ParsedWarrior{}, parseErr(body, "expected a label or instruction")
			}
			if err := install(word.str, word); err != nil {
				return ParsedWarrior{}, err
			}
			instrBody = remain.consume(1).skipSpace()
			if instrBody.isEmpty() {
				return ParsedWarrior{}, parseErr(remain, "label %q not followed by an instruction", word.str)
			}

		default:
			if word.isEmpty() {
				return ParsedWarrior{}, parseErr(body, "expected a label or instruction")
			}
			if err := install(word.str, word); err != nil {
				return ParsedWarrior{}, err
			}
			instrBody = remain.skipSpace()
			if instrBody.isEmpty() {
				return ParsedWarrior{}, parseErr(remain, "label %q not followed by an instruction", word.str)
			}
		}

		instr, err := parseInstructionLine(instrBody, strict1988)
		if err != nil {
			return ParsedWarrior{}, err
		}
		instructions = append(instructions, instr)
	}

	if len(instructions) == 0 {
		return ParsedWarrior{}, errors.New("warrior has no instructions")
	}
	if len(instructions) > maxWarriorLength {
		return ParsedWarrior{}, fmt.Errorf("warrior length %d exceeds maximum %d", len(instructions), maxWarriorLength)
	}

	entry := 0
	if haveOrg {
		idx, ok := labels[orgLabel]
		if !ok {
			return ParsedWarrior{}, fmt.Errorf("ORG references undefined label %q", orgLabel)
		}
		entry = idx
	}

	return ParsedWarrior{Name: name, Instructions: instructions, EntryPoint: entry}, nil
}

// parseNameComment recognizes the pMARS-family ";name <warrior name>"
// comment convention. The first such comment in the source, in any position,
// supplies ParsedWarrior.Name; later ones are ignored.
func parseNameComment(raw string) (string, bool) {
	i := strings.IndexByte(raw, ';')
	if i < 0 {
		return "", false
	}
	comment := strings.TrimSpace(raw[i+1:])
	const prefix = "name"
	if len(comment) < len(prefix) || !strings.EqualFold(comment[:len(prefix)], prefix) {
		return "", false
	}
	rest := comment[len(prefix):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// parseInstructionLine parses "OPCODE.MOD <operand>, <operand>" starting at
// c, which has already had any label prefix and leading whitespace removed.
func parseInstructionLine(c cursor, strict bool) (Instruction, error) {
	opTok, remain := c.consumeWhile(isWordChar)
	if opTok.isEmpty() {
		return Instruction{}, parseErr(c, "missing opcode")
	}
	if !remain.startsWith(isDot) {
		return Instruction{}, parseErr(remain, "missing modifier (opcode must be followed by '.MOD')")
	}
	remain = remain.consume(1)

	modTok, remain := remain.consumeWhile(isWordChar)
	if modTok.isEmpty() {
		return Instruction{}, parseErr(remain, "missing modifier")
	}

	opcode, err := lookupOpcode(opTok)
	if err != nil {
		return Instruction{}, err
	}
	modifier, ok := lookupModifier(modTok.str)
	if !ok {
		return Instruction{}, parseErr(modTok, "unknown modifier %q", modTok.str)
	}

	remain = remain.skipSpace()
	aMode, aField, remain, err := parseOperand(remain)
	if err != nil {
		return Instruction{}, err
	}

	remain = remain.skipSpace()
	if !remain.startsWith(isComma) {
		return Instruction{}, parseErr(remain, "missing ',' between operands")
	}
	remain = remain.consume(1).skipSpace()

	bMode, bField, remain, err := parseOperand(remain)
	if err != nil {
		return Instruction{}, err
	}

	remain = remain.skipSpace()
	if !remain.isEmpty() {
		return Instruction{}, parseErr(remain, "unexpected text after instruction")
	}

	in := Instruction{Opcode: opcode, Modifier: modifier, AMode: aMode, AField: aField, BMode: bMode, BField: bField}
	if strict {
		if err := checkStrict1988(in, opTok, modTok); err != nil {
			return Instruction{}, err
		}
	}
	return in, nil
}

func parseOperand(c cursor) (Mode, int, cursor, error) {
	if c.isEmpty() {
		return 0, 0, c, parseErr(c, "missing operand")
	}
	mode, ok := modeFromChar(c.str[0])
	if !ok {
		return 0, 0, c, parseErr(c, "missing addressing mode prefix")
	}
	c = c.consume(1)

	start := c
	neg := false
	switch {
	case c.startsWith(isMinus):
		neg = true
		c = c.consume(1)
	case c.startsWith(isPlus):
		c = c.consume(1)
	}

	digits, remain := c.consumeWhile(isDigit)
	if digits.isEmpty() {
		return 0, 0, c, parseErr(start, "non-decimal operand")
	}
	n, _ := strconv.Atoi(digits.str)
	if neg {
		n = -n
	}
	return mode, n, remain, nil
}

func modeFromChar(b byte) (Mode, bool) {
	switch b {
	case '#':
		return Immediate, true
	case '$':
		return Direct, true
	case '*':
		return AIndirect, true
	case '@':
		return BIndirect, true
	case '{':
		return APredec, true
	case '<':
		return BPredec, true
	case '}':
		return APostinc, true
	case '>':
		return BPostinc, true
	}
	return 0, false
}

func lookupOpcode(tok cursor) (Opcode, error) {
	switch strings.ToUpper(tok.str) {
	case "DAT":
		return DAT, nil
	case "MOV":
		return MOV, nil
	case "ADD":
		return ADD, nil
	case "SUB":
		return SUB, nil
	case "MUL":
		return MUL, nil
	case "DIV":
		return DIV, nil
	case "MOD":
		return MOD, nil
	case "JMP":
		return JMP, nil
	case "JMZ":
		return JMZ, nil
	case "JMN":
		return JMN, nil
	case "DJN":
		return DJN, nil
	case "CMP", "SEQ":
		return CMP, nil
	case "SNE":
		return SNE, nil
	case "SLT":
		return SLT, nil
	case "SPL":
		return SPL, nil
	case "NOP":
		return NOP, nil
	case "LDP", "STP":
		return 0, parseErr(tok, "%s is not supported", strings.ToUpper(tok.str))
	default:
		return 0, parseErr(tok, "unknown opcode %q", tok.str)
	}
}

func lookupModifier(s string) (Modifier, bool) {
	switch strings.ToUpper(s) {
	case "A":
		return ModA, true
	case "B":
		return ModB, true
	case "AB":
		return ModAB, true
	case "BA":
		return ModBA, true
	case "F":
		return ModF, true
	case "X":
		return ModX, true
	case "I":
		return ModI, true
	}
	return 0, false
}

// checkStrict1988 rejects the 94-only opcodes, modifiers and addressing
// modes that strict_1988_mode excludes: no MUL/DIV/MOD/SNE/NOP, no X/I
// modifiers, no A-field indirection.
func checkStrict1988(in Instruction, opTok, modTok cursor) error {
	switch in.Opcode {
	case DAT, MOV, ADD, SUB, JMP, JMZ, JMN, DJN, CMP, SLT, SPL:
	default:
		return parseErr(opTok, "opcode %s not permitted in strict_1988_mode", in.Opcode)
	}
	switch in.Modifier {
	case ModA, ModB, ModAB, ModBA, ModF:
	default:
		return parseErr(modTok, "modifier %s not permitted in strict_1988_mode", in.Modifier)
	}
	allowed := func(m Mode) bool {
		switch m {
		case Immediate, Direct, BIndirect, BPredec, BPostinc:
			return true
		}
		return false
	}
	if !allowed(in.AMode) {
		return fmt.Errorf("addressing mode %s not permitted in strict_1988_mode", in.AMode)
	}
	if !allowed(in.BMode) {
		return fmt.Errorf("addressing mode %s not permitted in strict_1988_mode", in.BMode)
	}
	return nil
}
