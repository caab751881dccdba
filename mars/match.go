// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mars

import "github.com/ondrik/redmars/redcode"

const (
	winScore = 3
	tieScore = 1
)

// runRound plays one round to completion: warrior 1 starts at offset 0,
// warrior 2 at normalize(min_distance+offset, core_size). first selects
// which warrior's process steps first this round (§4.6 alternation).
func runRound(p BattleParameters, w1, w2 []redcode.Instruction, entry1, entry2, offset, first int, tracer *Tracer) (score1, score2 int) {
	core := NewCore(p, tracer)

	addr1 := core.Load(w1, 0, entry1)
	addr2 := core.Load(w2, redcode.Normalize(p.MinDistance+offset, p.CoreSize), entry2)

	queues := [2]*ProcessQueue{
		NewProcessQueue(p.MaxProcesses),
		NewProcessQueue(p.MaxProcesses),
	}
	queues[0].Push(addr1)
	queues[1].Push(addr2)

	order := [2]int{first, 1 - first}

	for cycle := 0; cycle < p.MaxCycles; cycle++ {
		for _, w := range order {
			q := queues[w]
			if !q.Alive() {
				continue
			}
			pc := q.Pop()
			out := Execute(core, pc, core.Get(pc))
			if !out.Terminate {
				for _, next := range out.Pushes {
					q.Push(next)
				}
			}

			aAlive, bAlive := queues[0].Alive(), queues[1].Alive()
			switch {
			case !aAlive && !bAlive:
				return tieScore, tieScore
			case !aAlive:
				return 0, winScore
			case !bAlive:
				return winScore, 0
			}
		}
	}

	return tieScore, tieScore
}
