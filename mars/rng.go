// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mars

import "time"

// placementRNG is the Park-Miller minimal-standard generator pMARS uses to
// place warrior 2. Its state space is [1, 2^31-1); the Schrage split keeps
// the multiply from overflowing a 32-bit intermediate while matching the
// reference bit for bit.
type placementRNG struct {
	state int64
}

const (
	rngModulus    = 2147483647 // 2^31 - 1
	rngMultiplier = 16807
	rngSchrageQ   = 127773 // modulus / multiplier
	rngSchrageR   = 2836   // modulus % multiplier
)

// newPlacementRNG seeds the generator. When hasSeed is false, it draws a
// seed from the wall clock, matching the teacher's fallback to a
// non-deterministic source when the caller supplies none.
func newPlacementRNG(seed int, hasSeed bool) *placementRNG {
	s := int64(seed)
	if !hasSeed {
		s = time.Now().UnixNano() % rngModulus
	}
	// Map the raw seed into the generator's legal state space.
	s = (s % (1<<30 + 1))
	if s <= 0 {
		s += rngModulus - 1
	}
	return &placementRNG{state: s}
}

// next advances the generator by one step and returns the new state. The
// state is advanced before it is ever read as an offset; the seed-mapped
// initial value is never itself emitted (SPEC_FULL.md §9.2).
func (r *placementRNG) next() int64 {
	hi := r.state / rngSchrageQ
	lo := r.state % rngSchrageQ
	s := rngMultiplier*lo - rngSchrageR*hi
	if s < 0 {
		s += rngModulus
	}
	r.state = s
	return s
}

// offset returns this round's warrior-2 placement offset in [0, placements).
func (r *placementRNG) offset(placements int) int {
	return int(r.next() % int64(placements))
}
