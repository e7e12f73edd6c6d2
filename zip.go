// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq

import "iter"

// Combinator ranges.
//
// A range owns the temporary storage of its owned arguments, a begin pack and
// an end pack. The end pack never changes after construction. Every traversal
// starts from the stored begin pack, so a range can be iterated any number of
// times; [Range2.Skip] and friends move the stored begin pack itself.
//
// Traversal stops at the first step where any slot reaches its end, or when
// an advance fails. In the latter case Err reports the [*SlotError].
//
// A range is also a [Sequence] whose cursors are its packs, so ranges can be
// combined again.

// Range1 combines a single source.
type Range1[C0 Cursor[C0, R0], R0 any] struct {
	store   storage
	mask    Mask
	begin   Pack1[C0, R0]
	end     Pack1[C0, R0]
	skipErr error
	err     error
}

// Zip1 combines one source.
func Zip1[C0 Cursor[C0, R0], R0 any](a0 Arg[C0, R0]) *Range1[C0, R0] {
	return Zip1With(None, a0)
}

// Zip1With is like Zip1 with an explicit move policy.
func Zip1With[C0 Cursor[C0, R0], R0 any](p Policy, a0 Arg[C0, R0]) *Range1[C0, R0] {
	r := &Range1[C0, R0]{}
	r.store.reserve(countOwned(a0))
	b0, e0 := a0.bind(&r.store, p)
	r.begin = Pack1[C0, R0]{c0: b0}
	r.end = Pack1[C0, R0]{c0: e0}
	r.mask = maskOf(moving[C0, R0](b0))
	return r
}

func (r *Range1[C0, R0]) Begin() Pack1[C0, R0] { return r.begin }

func (r *Range1[C0, R0]) End() Pack1[C0, R0] { return r.end }

// Skip advances the begin cursor of slot by n positions, stopping at that
// slot's end. It panics if slot is not 0.
func (r *Range1[C0, R0]) Skip(slot, n int) *Range1[C0, R0] {
	if err := r.begin.skip(slot, n, r.end); err != nil {
		r.skipErr = joinErr(r.skipErr, err)
	}
	return r
}

// All returns the elements of the source.
func (r *Range1[C0, R0]) All() iter.Seq[R0] {
	return func(yield func(R0) bool) {
		r.err = r.skipErr
		for p := r.begin; !p.Equal(r.end); {
			if !yield(p.Deref()) {
				return
			}
			if err := p.Advance(); err != nil {
				r.err = joinErr(r.skipErr, err)
				return
			}
		}
	}
}

// Err returns the error that ended the last traversal, joined with the
// errors of failed Skip calls.
func (r *Range1[C0, R0]) Err() error { return r.err }

func (r *Range1[C0, R0]) MoveMask() Mask { return r.mask }

// Temporaries returns the number of arguments relocated into storage.
func (r *Range1[C0, R0]) Temporaries() int { return r.store.len() }

// Range2 combines two sources.
type Range2[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any] struct {
	store   storage
	mask    Mask
	begin   Pack2[C0, R0, C1, R1]
	end     Pack2[C0, R0, C1, R1]
	skipErr error
	err     error
}

// Zip2 combines two sources. The result yields one element of each source
// per step and stops with the shorter one.
func Zip2[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any](a0 Arg[C0, R0], a1 Arg[C1, R1]) *Range2[C0, R0, C1, R1] {
	return Zip2With(None, a0, a1)
}

// Zip2With is like Zip2 with an explicit move policy.
func Zip2With[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any](p Policy, a0 Arg[C0, R0], a1 Arg[C1, R1]) *Range2[C0, R0, C1, R1] {
	r := &Range2[C0, R0, C1, R1]{}
	r.store.reserve(countOwned(a0, a1))
	b0, e0 := a0.bind(&r.store, p)
	b1, e1 := a1.bind(&r.store, p)
	safe := infallible[C0, R0](b0) && infallible[C1, R1](b1)
	r.begin = Pack2[C0, R0, C1, R1]{c0: b0, c1: b1, safe: safe}
	r.end = Pack2[C0, R0, C1, R1]{c0: e0, c1: e1, safe: safe}
	r.mask = maskOf(moving[C0, R0](b0), moving[C1, R1](b1))
	return r
}

func (r *Range2[C0, R0, C1, R1]) Begin() Pack2[C0, R0, C1, R1] { return r.begin }

func (r *Range2[C0, R0, C1, R1]) End() Pack2[C0, R0, C1, R1] { return r.end }

// Skip advances only the begin cursor of slot by n positions, stopping at
// that slot's end; the other slots are untouched. It returns r so calls can
// be chained. It panics if slot is out of range.
func (r *Range2[C0, R0, C1, R1]) Skip(slot, n int) *Range2[C0, R0, C1, R1] {
	if err := r.begin.skip(slot, n, r.end); err != nil {
		r.skipErr = joinErr(r.skipErr, err)
	}
	return r
}

// All returns the combined elements as pairs.
//
//	for i, x := range zipseq.Enumerate(zipseq.Mut(v)).All() {
//		x.Set(i * i)
//	}
func (r *Range2[C0, R0, C1, R1]) All() iter.Seq2[R0, R1] {
	return func(yield func(R0, R1) bool) {
		r.err = r.skipErr
		for p := r.begin; !p.Equal(r.end); {
			v := p.Deref()
			if !yield(v.V0, v.V1) {
				return
			}
			if err := p.Advance(); err != nil {
				r.err = joinErr(r.skipErr, err)
				return
			}
		}
	}
}

// Views returns the combined elements as views.
func (r *Range2[C0, R0, C1, R1]) Views() iter.Seq[View2[R0, R1]] {
	return func(yield func(View2[R0, R1]) bool) {
		r.err = r.skipErr
		for p := r.begin; !p.Equal(r.end); {
			if !yield(p.Deref()) {
				return
			}
			if err := p.Advance(); err != nil {
				r.err = joinErr(r.skipErr, err)
				return
			}
		}
	}
}

// Err returns the error that ended the last traversal, joined with the
// errors of failed Skip calls.
func (r *Range2[C0, R0, C1, R1]) Err() error { return r.err }

func (r *Range2[C0, R0, C1, R1]) MoveMask() Mask { return r.mask }

// Temporaries returns the number of arguments relocated into storage.
func (r *Range2[C0, R0, C1, R1]) Temporaries() int { return r.store.len() }

// Range3 combines three sources.
type Range3[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any, C2 Cursor[C2, R2], R2 any] struct {
	store   storage
	mask    Mask
	begin   Pack3[C0, R0, C1, R1, C2, R2]
	end     Pack3[C0, R0, C1, R1, C2, R2]
	skipErr error
	err     error
}

// Zip3 combines three sources.
func Zip3[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any, C2 Cursor[C2, R2], R2 any](a0 Arg[C0, R0], a1 Arg[C1, R1], a2 Arg[C2, R2]) *Range3[C0, R0, C1, R1, C2, R2] {
	return Zip3With(None, a0, a1, a2)
}

// Zip3With is like Zip3 with an explicit move policy.
func Zip3With[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any, C2 Cursor[C2, R2], R2 any](p Policy, a0 Arg[C0, R0], a1 Arg[C1, R1], a2 Arg[C2, R2]) *Range3[C0, R0, C1, R1, C2, R2] {
	r := &Range3[C0, R0, C1, R1, C2, R2]{}
	r.store.reserve(countOwned(a0, a1, a2))
	b0, e0 := a0.bind(&r.store, p)
	b1, e1 := a1.bind(&r.store, p)
	b2, e2 := a2.bind(&r.store, p)
	safe := infallible[C0, R0](b0) && infallible[C1, R1](b1) && infallible[C2, R2](b2)
	r.begin = Pack3[C0, R0, C1, R1, C2, R2]{c0: b0, c1: b1, c2: b2, safe: safe}
	r.end = Pack3[C0, R0, C1, R1, C2, R2]{c0: e0, c1: e1, c2: e2, safe: safe}
	r.mask = maskOf(moving[C0, R0](b0), moving[C1, R1](b1), moving[C2, R2](b2))
	return r
}

func (r *Range3[C0, R0, C1, R1, C2, R2]) Begin() Pack3[C0, R0, C1, R1, C2, R2] { return r.begin }

func (r *Range3[C0, R0, C1, R1, C2, R2]) End() Pack3[C0, R0, C1, R1, C2, R2] { return r.end }

// Skip advances only the begin cursor of slot by n positions.
// See [Range2.Skip].
func (r *Range3[C0, R0, C1, R1, C2, R2]) Skip(slot, n int) *Range3[C0, R0, C1, R1, C2, R2] {
	if err := r.begin.skip(slot, n, r.end); err != nil {
		r.skipErr = joinErr(r.skipErr, err)
	}
	return r
}

// All returns the combined elements as views.
func (r *Range3[C0, R0, C1, R1, C2, R2]) All() iter.Seq[View3[R0, R1, R2]] {
	return func(yield func(View3[R0, R1, R2]) bool) {
		r.err = r.skipErr
		for p := r.begin; !p.Equal(r.end); {
			if !yield(p.Deref()) {
				return
			}
			if err := p.Advance(); err != nil {
				r.err = joinErr(r.skipErr, err)
				return
			}
		}
	}
}

func (r *Range3[C0, R0, C1, R1, C2, R2]) Err() error { return r.err }

func (r *Range3[C0, R0, C1, R1, C2, R2]) MoveMask() Mask { return r.mask }

func (r *Range3[C0, R0, C1, R1, C2, R2]) Temporaries() int { return r.store.len() }

// Range4 combines four sources.
type Range4[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any, C2 Cursor[C2, R2], R2 any, C3 Cursor[C3, R3], R3 any] struct {
	store   storage
	mask    Mask
	begin   Pack4[C0, R0, C1, R1, C2, R2, C3, R3]
	end     Pack4[C0, R0, C1, R1, C2, R2, C3, R3]
	skipErr error
	err     error
}

// Zip4 combines four sources.
func Zip4[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any, C2 Cursor[C2, R2], R2 any, C3 Cursor[C3, R3], R3 any](a0 Arg[C0, R0], a1 Arg[C1, R1], a2 Arg[C2, R2], a3 Arg[C3, R3]) *Range4[C0, R0, C1, R1, C2, R2, C3, R3] {
	return Zip4With(None, a0, a1, a2, a3)
}

// Zip4With is like Zip4 with an explicit move policy.
func Zip4With[C0 Cursor[C0, R0], R0 any, C1 Cursor[C1, R1], R1 any, C2 Cursor[C2, R2], R2 any, C3 Cursor[C3, R3], R3 any](p Policy, a0 Arg[C0, R0], a1 Arg[C1, R1], a2 Arg[C2, R2], a3 Arg[C3, R3]) *Range4[C0, R0, C1, R1, C2, R2, C3, R3] {
	r := &Range4[C0, R0, C1, R1, C2, R2, C3, R3]{}
	r.store.reserve(countOwned(a0, a1, a2, a3))
	b0, e0 := a0.bind(&r.store, p)
	b1, e1 := a1.bind(&r.store, p)
	b2, e2 := a2.bind(&r.store, p)
	b3, e3 := a3.bind(&r.store, p)
	safe := infallible[C0, R0](b0) && infallible[C1, R1](b1) && infallible[C2, R2](b2) && infallible[C3, R3](b3)
	r.begin = Pack4[C0, R0, C1, R1, C2, R2, C3, R3]{c0: b0, c1: b1, c2: b2, c3: b3, safe: safe}
	r.end = Pack4[C0, R0, C1, R1, C2, R2, C3, R3]{c0: e0, c1: e1, c2: e2, c3: e3, safe: safe}
	r.mask = maskOf(moving[C0, R0](b0), moving[C1, R1](b1), moving[C2, R2](b2), moving[C3, R3](b3))
	return r
}

func (r *Range4[C0, R0, C1, R1, C2, R2, C3, R3]) Begin() Pack4[C0, R0, C1, R1, C2, R2, C3, R3] {
	return r.begin
}

func (r *Range4[C0, R0, C1, R1, C2, R2, C3, R3]) End() Pack4[C0, R0, C1, R1, C2, R2, C3, R3] {
	return r.end
}

// Skip advances only the begin cursor of slot by n positions.
// See [Range2.Skip].
func (r *Range4[C0, R0, C1, R1, C2, R2, C3, R3]) Skip(slot, n int) *Range4[C0, R0, C1, R1, C2, R2, C3, R3] {
	if err := r.begin.skip(slot, n, r.end); err != nil {
		r.skipErr = joinErr(r.skipErr, err)
	}
	return r
}

// All returns the combined elements as views.
func (r *Range4[C0, R0, C1, R1, C2, R2, C3, R3]) All() iter.Seq[View4[R0, R1, R2, R3]] {
	return func(yield func(View4[R0, R1, R2, R3]) bool) {
		r.err = r.skipErr
		for p := r.begin; !p.Equal(r.end); {
			if !yield(p.Deref()) {
				return
			}
			if err := p.Advance(); err != nil {
				r.err = joinErr(r.skipErr, err)
				return
			}
		}
	}
}

func (r *Range4[C0, R0, C1, R1, C2, R2, C3, R3]) Err() error { return r.err }

func (r *Range4[C0, R0, C1, R1, C2, R2, C3, R3]) MoveMask() Mask { return r.mask }

func (r *Range4[C0, R0, C1, R1, C2, R2, C3, R3]) Temporaries() int { return r.store.len() }
