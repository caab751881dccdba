// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mars

import (
	"fmt"

	"github.com/ondrik/redmars/redcode"
)

// RunBattle plays a full battle between two parsed warriors and returns
// their aggregate score pair. It allocates a fresh core, fresh queues, and
// a fresh placement RNG on every call, so it is safe to call concurrently
// from multiple goroutines (§5): nothing here is shared mutable state.
//
// The evolutionary driver that owns warrior breeding, pairing and archival
// is an external collaborator this package never imports; RunBattle is the
// pure function boundary that driver calls across (§6).
func RunBattle(p BattleParameters, w1, w2 redcode.ParsedWarrior, tracer *Tracer) (score1, score2 int, err error) {
	if err := p.Validate(); err != nil {
		return 0, 0, err
	}

	if w1.Equal(w2) {
		return p.Rounds, p.Rounds, nil
	}

	placements := p.CoreSize - 2*p.MinDistance + 1
	if placements <= 0 {
		return 0, 0, fmt.Errorf("min_distance %d leaves no valid placements in a core of size %d", p.MinDistance, p.CoreSize)
	}

	cells1 := normalizeInstructions(w1.Instructions, p.CoreSize)
	cells2 := normalizeInstructions(w2.Instructions, p.CoreSize)
	rng := newPlacementRNG(p.Seed, p.HasSeed)

	for round := 0; round < p.Rounds; round++ {
		offset := rng.offset(placements)
		first := round % 2

		s1, s2 := runRound(p, cells1, cells2, w1.EntryPoint, w2.EntryPoint, offset, first, tracer)
		score1 += s1
		score2 += s2

		remaining := p.Rounds - (round + 1)
		if abs(score1-score2) > 3*remaining {
			break
		}
	}

	return score1, score2, nil
}

func normalizeInstructions(in []redcode.Instruction, coreSize int) []redcode.Instruction {
	out := make([]redcode.Instruction, len(in))
	for i, instr := range in {
		instr.AField = redcode.Normalize(instr.AField, coreSize)
		instr.BField = redcode.Normalize(instr.BField, coreSize)
		out[i] = instr
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// FormatScores renders the two-line "scores" ABI shared with external
// pmars/nmars back-ends: "<id> 0 0 0 <score> scores" per warrior. The
// three zero fields are placeholders the legacy format reserves for
// win/lose/tie counters this simulator does not track separately.
func FormatScores(id1, id2 string, score1, score2 int) string {
	return fmt.Sprintf("%s 0 0 0 %d scores\n%s 0 0 0 %d scores\n", id1, score1, id2, score2)
}
