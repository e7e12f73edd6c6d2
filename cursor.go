// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq

import "strconv"

// Cursor is the F-bounded interface for forward positions over one source.
// The self-referencing constraint C Cursor[C, R] lets packs hold the concrete
// cursor type, so advance and dereference are resolved at monomorphization
// time rather than through interface dispatch.
//
// R is what a dereference yields. Read-only sources use the element type
// itself (a copy, never assignable); mutable sources use [Ref].
//
// A cursor is a value. Next returns the advanced position and leaves the
// receiver untouched; it returns a non-nil error only if the source cannot
// produce the next position. Cursors never own the data they point into.
type Cursor[C Cursor[C, R], R any] interface {
	Deref() R
	Next() (C, error)
	Equal(other C) bool
}

// Sequence is the capability a source must provide to be combined:
// a begin cursor and an end cursor over the same data.
type Sequence[C Cursor[C, R], R any] interface {
	Begin() C
	End() C
}

// Relocatable is a Sequence that can move its content into storage owned by
// a combinator. Relocate transfers ownership: the receiver must not be used
// afterwards. When move is true, value reads through the relocated cursors
// move elements out instead of copying them.
//
// Only Relocatable sources can be passed to [Own]; a source that cannot be
// relocated is rejected at compile time.
type Relocatable[C Cursor[C, R], R any] interface {
	Sequence[C, R]
	Relocate(move bool) Sequence[C, R]
}

// Infallible marks a cursor whose Next never returns an error.
// Packs whose cursors are all Infallible advance in place without
// taking a snapshot.
type Infallible interface {
	Infallible()
}

// infallible reports whether c is statically known not to fail on Next.
// Called once per slot at construction.
func infallible[C Cursor[C, R], R any](c C) bool {
	_, ok := any(c).(Infallible)
	return ok
}

// Mover is implemented by cursors that can move elements out of their slot
// on value reads. Moves reports whether this cursor does.
type Mover interface {
	Moves() bool
}

// moving reports whether c moves elements out on value reads.
func moving[C Cursor[C, R], R any](c C) bool {
	m, ok := any(c).(Mover)
	return ok && m.Moves()
}

// skipCursor advances c up to n times, stopping early at end.
// On failure c is left at its last good position.
func skipCursor[C Cursor[C, R], R any](c, end C, n int) (C, error) {
	for ; n > 0 && !c.Equal(end); n-- {
		next, err := c.Next()
		if err != nil {
			return c, err
		}
		c = next
	}
	return c, nil
}

//go:noinline
func slotOutOfRange(slot, arity int) {
	panic("zipseq: slot index out of range: " + strconv.Itoa(slot) + " (arity " + strconv.Itoa(arity) + ")")
}
