// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq

// Cursor packs: fixed-arity heterogeneous tuples of cursors, one per source.
//
// Every pack provides:
//   - Advance: move every slot once, with the strong guarantee
//   - Deref: view the current element of every slot
//   - Equal: true if at least one positional pair of cursors is equal
//   - Next: value form of Advance, so a pack is itself a [Cursor]
//
// Strong guarantee: when every slot is [Infallible] (decided once at
// construction) Advance moves the cursors in place. Otherwise the pack is
// copied before the first slot moves and restored if any slot fails; the
// failure is returned as a [*SlotError].

// Pack1 is a cursor pack over one source.
type Pack1[C0 Cursor[C0, R0], R0 any] struct {
	c0 C0
}

func (p Pack1[C0, R0]) Deref() R0 { return p.c0.Deref() }

func (p Pack1[C0, R0]) Equal(o Pack1[C0, R0]) bool { return p.c0.Equal(o.c0) }

// Advance moves the pack one step forward.
func (p *Pack1[C0, R0]) Advance() error {
	c0, err := p.c0.Next()
	if err != nil {
		return slotError(0, err)
	}
	p.c0 = c0
	return nil
}

func (p Pack1[C0, R0]) Next() (Pack1[C0, R0], error) {
	err := p.Advance()
	return p, err
}

func (p *Pack1[C0, R0]) skip(slot, n int, end Pack1[C0, R0]) error {
	var err error
	switch slot {
	case 0:
		p.c0, err = skipCursor[C0, R0](p.c0, end.c0, n)
	default:
		slotOutOfRange(slot, 1)
	}
	if err != nil {
		return slotError(slot, err)
	}
	return nil
}

// Pack2 is a cursor pack over two sources.
type Pack2[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any] struct {
	c0   C0
	c1   C1
	safe bool
}

func (p Pack2[C0, R0, C1, R1]) Deref() View2[R0, R1] {
	return View2[R0, R1]{V0: p.c0.Deref(), V1: p.c1.Deref()}
}

func (p Pack2[C0, R0, C1, R1]) Equal(o Pack2[C0, R0, C1, R1]) bool {
	return p.c0.Equal(o.c0) || p.c1.Equal(o.c1)
}

// Advance moves every slot one step forward, or none of them.
func (p *Pack2[C0, R0, C1, R1]) Advance() error {
	if p.safe {
		p.c0, _ = p.c0.Next()
		p.c1, _ = p.c1.Next()
		return nil
	}
	saved := *p
	var err error
	if p.c0, err = p.c0.Next(); err != nil {
		*p = saved
		return slotError(0, err)
	}
	if p.c1, err = p.c1.Next(); err != nil {
		*p = saved
		return slotError(1, err)
	}
	return nil
}

func (p Pack2[C0, R0, C1, R1]) Next() (Pack2[C0, R0, C1, R1], error) {
	err := p.Advance()
	return p, err
}

func (p *Pack2[C0, R0, C1, R1]) skip(slot, n int, end Pack2[C0, R0, C1, R1]) error {
	var err error
	switch slot {
	case 0:
		p.c0, err = skipCursor[C0, R0](p.c0, end.c0, n)
	case 1:
		p.c1, err = skipCursor[C1, R1](p.c1, end.c1, n)
	default:
		slotOutOfRange(slot, 2)
	}
	if err != nil {
		return slotError(slot, err)
	}
	return nil
}

// Pack3 is a cursor pack over three sources.
type Pack3[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any, C2 Cursor[C2, R2], R2 any] struct {
	c0   C0
	c1   C1
	c2   C2
	safe bool
}

func (p Pack3[C0, R0, C1, R1, C2, R2]) Deref() View3[R0, R1, R2] {
	return View3[R0, R1, R2]{V0: p.c0.Deref(), V1: p.c1.Deref(), V2: p.c2.Deref()}
}

func (p Pack3[C0, R0, C1, R1, C2, R2]) Equal(o Pack3[C0, R0, C1, R1, C2, R2]) bool {
	return p.c0.Equal(o.c0) || p.c1.Equal(o.c1) || p.c2.Equal(o.c2)
}

// Advance moves every slot one step forward, or none of them.
func (p *Pack3[C0, R0, C1, R1, C2, R2]) Advance() error {
	if p.safe {
		p.c0, _ = p.c0.Next()
		p.c1, _ = p.c1.Next()
		p.c2, _ = p.c2.Next()
		return nil
	}
	saved := *p
	var err error
	if p.c0, err = p.c0.Next(); err != nil {
		*p = saved
		return slotError(0, err)
	}
	if p.c1, err = p.c1.Next(); err != nil {
		*p = saved
		return slotError(1, err)
	}
	if p.c2, err = p.c2.Next(); err != nil {
		*p = saved
		return slotError(2, err)
	}
	return nil
}

func (p Pack3[C0, R0, C1, R1, C2, R2]) Next() (Pack3[C0, R0, C1, R1, C2, R2], error) {
	err := p.Advance()
	return p, err
}

func (p *Pack3[C0, R0, C1, R1, C2, R2]) skip(slot, n int, end Pack3[C0, R0, C1, R1, C2, R2]) error {
	var err error
	switch slot {
	case 0:
		p.c0, err = skipCursor[C0, R0](p.c0, end.c0, n)
	case 1:
		p.c1, err = skipCursor[C1, R1](p.c1, end.c1, n)
	case 2:
		p.c2, err = skipCursor[C2, R2](p.c2, end.c2, n)
	default:
		slotOutOfRange(slot, 3)
	}
	if err != nil {
		return slotError(slot, err)
	}
	return nil
}

// Pack4 is a cursor pack over four sources.
type Pack4[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any, C2 Cursor[C2, R2], R2 any, C3 Cursor[C3, R3], R3 any] struct {
	c0   C0
	c1   C1
	c2   C2
	c3   C3
	safe bool
}

func (p Pack4[C0, R0, C1, R1, C2, R2, C3, R3]) Deref() View4[R0, R1, R2, R3] {
	return View4[R0, R1, R2, R3]{V0: p.c0.Deref(), V1: p.c1.Deref(), V2: p.c2.Deref(), V3: p.c3.Deref()}
}

func (p Pack4[C0, R0, C1, R1, C2, R2, C3, R3]) Equal(o Pack4[C0, R0, C1, R1, C2, R2, C3, R3]) bool {
	return p.c0.Equal(o.c0) || p.c1.Equal(o.c1) || p.c2.Equal(o.c2) || p.c3.Equal(o.c3)
}

// Advance moves every slot one step forward, or none of them.
func (p *Pack4[C0, R0, C1, R1, C2, R2, C3, R3]) Advance() error {
	if p.safe {
		p.c0, _ = p.c0.Next()
		p.c1, _ = p.c1.Next()
		p.c2, _ = p.c2.Next()
		p.c3, _ = p.c3.Next()
		return nil
	}
	saved := *p
	var err error
	if p.c0, err = p.c0.Next(); err != nil {
		*p = saved
		return slotError(0, err)
	}
	if p.c1, err = p.c1.Next(); err != nil {
		*p = saved
		return slotError(1, err)
	}
	if p.c2, err = p.c2.Next(); err != nil {
		*p = saved
		return slotError(2, err)
	}
	if p.c3, err = p.c3.Next(); err != nil {
		*p = saved
		return slotError(3, err)
	}
	return nil
}

func (p Pack4[C0, R0, C1, R1, C2, R2, C3, R3]) Next() (Pack4[C0, R0, C1, R1, C2, R2, C3, R3], error) {
	err := p.Advance()
	return p, err
}

func (p *Pack4[C0, R0, C1, R1, C2, R2, C3, R3]) skip(slot, n int, end Pack4[C0, R0, C1, R1, C2, R2, C3, R3]) error {
	var err error
	switch slot {
	case 0:
		p.c0, err = skipCursor[C0, R0](p.c0, end.c0, n)
	case 1:
		p.c1, err = skipCursor[C1, R1](p.c1, end.c1, n)
	case 2:
		p.c2, err = skipCursor[C2, R2](p.c2, end.c2, n)
	case 3:
		p.c3, err = skipCursor[C3, R3](p.c3, end.c3, n)
	default:
		slotOutOfRange(slot, 4)
	}
	if err != nil {
		return slotError(slot, err)
	}
	return nil
}
