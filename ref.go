// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq

// Ref is an assignable view of the current element of a mutable slot.
// It aliases the source's storage: Set and writes through Ptr change the
// source element in place, never a private copy.
//
// A Ref is valid for one step only; the next advance invalidates it.
type Ref[E any] struct {
	p    *E
	move bool
}

// RefOf returns a Ref aliasing *p. Custom mutable cursors use it from Deref.
func RefOf[E any](p *E) Ref[E] {
	return Ref[E]{p: p}
}

// MovingRefOf is like RefOf, but Get moves the element out of *p.
func MovingRefOf[E any](p *E) Ref[E] {
	return Ref[E]{p: p, move: true}
}

// Get reads the element. On a slot selected by the move mask the element is
// moved out: the storage is left holding the zero value, so a position is
// moved from exactly once.
func (r Ref[E]) Get() E {
	if r.move {
		v := *r.p
		var zero E
		*r.p = zero
		return v
	}
	return *r.p
}

// Set assigns v to the source element.
func (r Ref[E]) Set(v E) { *r.p = v }

// Ptr returns the alias of the source element. It never moves.
func (r Ref[E]) Ptr() *E { return r.p }

// Moves reports whether Get moves out of the slot.
func (r Ref[E]) Moves() bool { return r.move }
