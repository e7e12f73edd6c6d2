// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq

// Slice is a mutable source over a Go slice. Its slots are [Ref] views that
// write through to the slice's backing array.
type Slice[E any] []E

// Begin returns a cursor at the first element.
func (s Slice[E]) Begin() SliceCursor[E] { return SliceCursor[E]{s: s} }

// End returns the one-past-the-last cursor.
func (s Slice[E]) End() SliceCursor[E] { return SliceCursor[E]{s: s, i: len(s)} }

// Relocate moves the slice into combinator storage. The backing array is
// taken over, not copied.
func (s Slice[E]) Relocate(move bool) Sequence[SliceCursor[E], Ref[E]] {
	return &ownedSlice[E]{s: s, move: move}
}

// ownedSlice is the storage cell of a relocated Slice.
type ownedSlice[E any] struct {
	s    []E
	move bool
}

func (o *ownedSlice[E]) Begin() SliceCursor[E] {
	return SliceCursor[E]{s: o.s, move: o.move}
}

func (o *ownedSlice[E]) End() SliceCursor[E] {
	return SliceCursor[E]{s: o.s, i: len(o.s), move: o.move}
}

// SliceCursor is a position in a [Slice].
type SliceCursor[E any] struct {
	s    []E
	i    int
	move bool
}

func (c SliceCursor[E]) Deref() Ref[E] { return Ref[E]{p: &c.s[c.i], move: c.move} }

func (c SliceCursor[E]) Next() (SliceCursor[E], error) {
	c.i++
	return c, nil
}

// Equal compares positions only. Cursors of one slot always share a slice.
func (c SliceCursor[E]) Equal(o SliceCursor[E]) bool { return c.i == o.i }

func (SliceCursor[E]) Infallible() {}

// Moves reports whether Deref yields moving references.
func (c SliceCursor[E]) Moves() bool { return c.move }

// ConstSlice is a read-only source over a Go slice. Its slots are element
// copies; nothing can be assigned through them.
type ConstSlice[E any] []E

func (s ConstSlice[E]) Begin() ConstCursor[E] { return ConstCursor[E]{s: s} }

func (s ConstSlice[E]) End() ConstCursor[E] { return ConstCursor[E]{s: s, i: len(s)} }

// Relocate moves the slice into combinator storage. Read-only slots never
// move, so the move flag is ignored.
func (s ConstSlice[E]) Relocate(bool) Sequence[ConstCursor[E], E] {
	return &s
}

// ConstCursor is a position in a [ConstSlice].
type ConstCursor[E any] struct {
	s []E
	i int
}

func (c ConstCursor[E]) Deref() E { return c.s[c.i] }

func (c ConstCursor[E]) Next() (ConstCursor[E], error) {
	c.i++
	return c, nil
}

func (c ConstCursor[E]) Equal(o ConstCursor[E]) bool { return c.i == o.i }

func (ConstCursor[E]) Infallible() {}

// String is a read-only source over the bytes of a string.
// Unlike a C string there is no terminating NUL element.
type String string

func (s String) Begin() StringCursor { return StringCursor{s: string(s)} }

func (s String) End() StringCursor { return StringCursor{s: string(s), i: len(s)} }

func (s String) Relocate(bool) Sequence[StringCursor, byte] { return s }

// StringCursor is a position in a [String].
type StringCursor struct {
	s string
	i int
}

func (c StringCursor) Deref() byte { return c.s[c.i] }

func (c StringCursor) Next() (StringCursor, error) {
	c.i++
	return c, nil
}

func (c StringCursor) Equal(o StringCursor) bool { return c.i == o.i }

func (StringCursor) Infallible() {}

// Mut borrows s as a mutable source.
func Mut[E any](s []E) Arg[SliceCursor[E], Ref[E]] {
	return Borrow[SliceCursor[E], Ref[E]](Slice[E](s))
}

// Const borrows s as a read-only source.
func Const[E any](s []E) Arg[ConstCursor[E], E] {
	return Borrow[ConstCursor[E], E](ConstSlice[E](s))
}

// Temp takes ownership of s as a mutable transient source.
func Temp[E any](s []E) Arg[SliceCursor[E], Ref[E]] {
	return Own[SliceCursor[E], Ref[E]](Slice[E](s))
}

// TempConst takes ownership of s as a read-only transient source.
func TempConst[E any](s []E) Arg[ConstCursor[E], E] {
	return Own[ConstCursor[E], E](ConstSlice[E](s))
}

// Str borrows the bytes of s.
func Str(s string) Arg[StringCursor, byte] {
	return Borrow[StringCursor, byte](String(s))
}
