// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq

import "golang.org/x/exp/constraints"

// Enumerate pairs each element of a with its position, starting at 0.
// Slot 0 is the count; slot 1 is the source.
//
//	for i, x := range zipseq.Enumerate(zipseq.Const(v)).All() {
//		fmt.Println(i, x)
//	}
func Enumerate[C Cursor[C, R], R any](a Arg[C, R]) *Range2[CountCursor[int], int, C, R] {
	return Zip2(Count(), a)
}

// EnumerateWith is like Enumerate with an explicit move policy.
func EnumerateWith[C Cursor[C, R], R any](p Policy, a Arg[C, R]) *Range2[CountCursor[int], int, C, R] {
	return Zip2With(p, Count(), a)
}

// EnumerateFrom is like Enumerate with the count starting at start.
func EnumerateFrom[I constraints.Integer, C Cursor[C, R], R any](start I, a Arg[C, R]) *Range2[CountCursor[I], I, C, R] {
	return Zip2(CountFrom(start), a)
}

// Enumerate2 pairs positions with two sources.
func Enumerate2[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any](a0 Arg[C0, R0], a1 Arg[C1, R1]) *Range3[CountCursor[int], int, C0, R0, C1, R1] {
	return Zip3(Count(), a0, a1)
}

// Enumerate3 pairs positions with three sources.
func Enumerate3[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any, C2 Cursor[C2, R2], R2 any](a0 Arg[C0, R0], a1 Arg[C1, R1], a2 Arg[C2, R2]) *Range4[CountCursor[int], int, C0, R0, C1, R1, C2, R2] {
	return Zip4(Count(), a0, a1, a2)
}

// Indexed enumerates a literal list of values. The values are copied into a
// fresh array owned by the returned range.
func Indexed[E any](v E, vs ...E) *Range2[CountCursor[int], int, SliceCursor[E], Ref[E]] {
	values := make([]E, 0, 1+len(vs))
	values = append(values, v)
	values = append(values, vs...)
	return Enumerate(Temp(values))
}
