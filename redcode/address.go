// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package redcode

// Normalize reduces x into [0, m), matching pMARS's treatment of every
// stored field and address.
func Normalize(x, m int) int {
	x %= m
	if x < 0 {
		x += m
	}
	return x
}

// Fold implements the pMARS M-operator: it reduces offset into [0, limit),
// then subtracts limit if the result exceeds limit/2, leaving a result in
// (-limit/2, +limit/2]. It is applied to every non-immediate operand field
// before that field is added to a program counter.
func Fold(offset, limit int) int {
	off := Normalize(offset, limit)
	if off > limit/2 {
		off -= limit
	}
	return off
}
