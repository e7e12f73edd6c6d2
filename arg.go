// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq

// Policy selects how value reads behave on storage-backed slots.
type Policy uint8

const (
	// None copies on every value read. This is the default.
	None Policy = 0
	// MoveFromTemporaries moves elements out of slots whose source was
	// passed with [Own]. Borrowed slots keep copying.
	MoveFromTemporaries Policy = 1 << 0
)

// Has reports whether every flag in q is set in p.
func (p Policy) Has(q Policy) bool { return p&q == q }

// Mask is the per-slot move mask of a combinator: bit i is set exactly when
// slot i is backed by temporary storage, the combinator was built with
// [MoveFromTemporaries], and the slot's cursor is a [Mover] that moves.
// Read-only slots never move, so their bit is never set.
type Mask uint64

// Has reports whether slot i moves on value reads.
func (m Mask) Has(slot int) bool { return slot >= 0 && slot < 64 && m&(1<<uint(slot)) != 0 }

func (m Mask) with(slot int) Mask { return m | 1<<uint(slot) }

func maskOf(moves ...bool) Mask {
	var m Mask
	for i, mv := range moves {
		if mv {
			m = m.with(i)
		}
	}
	return m
}

// Arg is one argument of a combinator: either a borrowed sequence whose data
// stays owned by the caller, or an owned sequence whose content is relocated
// into the combinator's temporary storage.
//
// Build an Arg with [Borrow] or [Own], or with one of the source helpers
// ([Mut], [Const], [Temp], [Str], [Count] ...). The zero Arg is invalid.
type Arg[C Cursor[C, R], R any] struct {
	seq   Sequence[C, R]
	reloc Relocatable[C, R]
}

// Borrow binds a caller-owned sequence. The combinator holds only cursors
// into it; the caller keeps ownership and mutability.
func Borrow[C Cursor[C, R], R any](s Sequence[C, R]) Arg[C, R] {
	return Arg[C, R]{seq: s}
}

// Own binds a transient sequence. At construction its content is relocated
// into storage owned by the combinator and all cursors are derived from that
// storage. The caller must not use s afterwards.
func Own[C Cursor[C, R], R any](s Relocatable[C, R]) Arg[C, R] {
	return Arg[C, R]{reloc: s}
}

// Owned reports whether the argument will be relocated into temporary storage.
func (a Arg[C, R]) Owned() bool { return a.reloc != nil }

// bind derives the begin and end cursors of a, relocating owned content
// into st first.
func (a Arg[C, R]) bind(st *storage, p Policy) (begin, end C) {
	if a.reloc != nil {
		s := a.reloc.Relocate(p.Has(MoveFromTemporaries))
		st.put(s)
		return s.Begin(), s.End()
	}
	if a.seq == nil {
		zeroArg()
	}
	return a.seq.Begin(), a.seq.End()
}

//go:noinline
func zeroArg() {
	panic("zipseq: zero Arg")
}

// owned is implemented by every Arg instantiation so constructors can count
// temporaries across heterogeneous arguments before binding any of them.
type owned interface {
	Owned() bool
}

func countOwned(args ...owned) int {
	n := 0
	for _, a := range args {
		if a.Owned() {
			n++
		}
	}
	return n
}

// storage is the temporary storage of one combinator: an arena with one cell
// per owned argument. Capacity is reserved before the first bind and the
// arena never grows afterwards, so cells keep their identity for the whole
// lifetime of the combinator. A combinator built purely from borrowed
// arguments has a nil arena.
type storage struct {
	cells []any
}

func (s *storage) reserve(n int) {
	if n > 0 {
		s.cells = make([]any, 0, n)
	}
}

func (s *storage) put(cell any) {
	if len(s.cells) == cap(s.cells) {
		panic("zipseq: temporary storage is sealed")
	}
	s.cells = append(s.cells, cell)
}

func (s *storage) len() int { return len(s.cells) }
