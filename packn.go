// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq

// PackN is a cursor pack over a run-time number of sources of one cursor
// type. It follows the same contract as [Pack2]; the arity is fixed when the
// pack is built.
//
// PackN values never share mutable state: Next returns a pack with its own
// cursor slice and leaves the receiver untouched, so copies of a pack, and
// the packs returned by [RangeN.Begin] and [RangeN.End], are independent.
type PackN[C Cursor[C, R], R any] struct {
	cs    []C
	spare []C
	safe  bool
}

func newPackN[C Cursor[C, R], R any](cs []C, safe bool) PackN[C, R] {
	p := PackN[C, R]{cs: cs, safe: safe}
	if !safe {
		p.spare = make([]C, len(cs))
	}
	return p
}

// Len returns the arity of the pack.
func (p PackN[C, R]) Len() int { return len(p.cs) }

// Deref returns a fresh view of every slot.
func (p PackN[C, R]) Deref() []R {
	return p.derefInto(make([]R, len(p.cs)))
}

func (p PackN[C, R]) derefInto(buf []R) []R {
	for i := range p.cs {
		buf[i] = p.cs[i].Deref()
	}
	return buf
}

func (p PackN[C, R]) Equal(o PackN[C, R]) bool {
	for i := range p.cs {
		if p.cs[i].Equal(o.cs[i]) {
			return true
		}
	}
	return false
}

// Next returns the pack moved one step forward. On failure the returned
// pack is at the receiver's position and the error is a [*SlotError].
func (p PackN[C, R]) Next() (PackN[C, R], error) {
	q := p.clone()
	err := q.advance()
	return q, err
}

// advance moves every slot in place, or none of them. Only packs that are
// not shared with any other value may be advanced in place.
func (p *PackN[C, R]) advance() error {
	if p.safe {
		for i := range p.cs {
			p.cs[i], _ = p.cs[i].Next()
		}
		return nil
	}
	copy(p.spare, p.cs)
	for i := range p.cs {
		c, err := p.cs[i].Next()
		if err != nil {
			copy(p.cs, p.spare)
			return slotError(i, err)
		}
		p.cs[i] = c
	}
	return nil
}

func (p PackN[C, R]) clone() PackN[C, R] {
	cs := make([]C, len(p.cs))
	copy(cs, p.cs)
	return newPackN[C, R](cs, p.safe)
}

func (p *PackN[C, R]) skip(slot, n int, end PackN[C, R]) error {
	if slot < 0 || slot >= len(p.cs) {
		slotOutOfRange(slot, len(p.cs))
	}
	c, err := skipCursor[C, R](p.cs[slot], end.cs[slot], n)
	p.cs[slot] = c
	if err != nil {
		return slotError(slot, err)
	}
	return nil
}
