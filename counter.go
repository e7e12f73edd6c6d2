// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq

import "golang.org/x/exp/constraints"

// Counter is the infinite counting sequence start, start+1, start+2, ...
// Its end cursor is unreachable, so a Counter never limits the length of a
// combination.
type Counter[I constraints.Integer] struct {
	Start I
}

func (c Counter[I]) Begin() CountCursor[I] { return CountCursor[I]{n: c.Start} }

func (c Counter[I]) End() CountCursor[I] { return CountCursor[I]{} }

// CountCursor holds the current step count. It dereferences to the count by
// value; the count cannot be assigned through a view.
type CountCursor[I constraints.Integer] struct {
	n I
}

func (c CountCursor[I]) Deref() I { return c.n }

func (c CountCursor[I]) Next() (CountCursor[I], error) {
	c.n++
	return c, nil
}

// Equal always reports false.
func (CountCursor[I]) Equal(CountCursor[I]) bool { return false }

func (CountCursor[I]) Infallible() {}

// Count binds a counter starting at 0.
func Count() Arg[CountCursor[int], int] {
	return CountFrom(0)
}

// CountFrom binds a counter starting at start.
func CountFrom[I constraints.Integer](start I) Arg[CountCursor[I], I] {
	return Borrow[CountCursor[I], I](Counter[I]{Start: start})
}
