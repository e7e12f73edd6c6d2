// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq

import "iter"

// RangeN combines a run-time number of sources sharing one cursor type.
type RangeN[C Cursor[C, R], R any] struct {
	store   storage
	mask    Mask
	begin   PackN[C, R]
	end     PackN[C, R]
	skipErr error
	err     error
}

// ZipN combines first and rest. At least one source is required by the
// signature; the result stops with the shortest source.
func ZipN[C Cursor[C, R], R any](first Arg[C, R], rest ...Arg[C, R]) *RangeN[C, R] {
	return ZipNWith(None, first, rest...)
}

// ZipNWith is like ZipN with an explicit move policy. The policy applies to
// every slot; MoveMask reports only the first 64.
func ZipNWith[C Cursor[C, R], R any](p Policy, first Arg[C, R], rest ...Arg[C, R]) *RangeN[C, R] {
	args := make([]Arg[C, R], 0, 1+len(rest))
	args = append(args, first)
	args = append(args, rest...)

	r := &RangeN[C, R]{}
	n := 0
	for _, a := range args {
		if a.Owned() {
			n++
		}
	}
	r.store.reserve(n)

	begin := make([]C, len(args))
	end := make([]C, len(args))
	safe := true
	for i, a := range args {
		begin[i], end[i] = a.bind(&r.store, p)
		if i < 64 && moving[C, R](begin[i]) {
			r.mask = r.mask.with(i)
		}
		safe = safe && infallible[C, R](begin[i])
	}
	r.begin = newPackN[C, R](begin, safe)
	r.end = newPackN[C, R](end, safe)
	return r
}

// Len returns the number of combined sources.
func (r *RangeN[C, R]) Len() int { return r.begin.Len() }

// Begin returns a copy of the stored begin pack.
func (r *RangeN[C, R]) Begin() PackN[C, R] { return r.begin.clone() }

// End returns a copy of the stored end pack.
func (r *RangeN[C, R]) End() PackN[C, R] { return r.end.clone() }

// Skip advances only the begin cursor of slot by n positions.
// See [Range2.Skip].
func (r *RangeN[C, R]) Skip(slot, n int) *RangeN[C, R] {
	if err := r.begin.skip(slot, n, r.end); err != nil {
		r.skipErr = joinErr(r.skipErr, err)
	}
	return r
}

// All returns the combined elements. The yielded slice is reused between
// steps and must not be retained.
func (r *RangeN[C, R]) All() iter.Seq[[]R] {
	return func(yield func([]R) bool) {
		r.err = r.skipErr
		p := r.begin.clone()
		buf := make([]R, p.Len())
		for !p.Equal(r.end) {
			if !yield(p.derefInto(buf)) {
				return
			}
			if err := p.advance(); err != nil {
				r.err = joinErr(r.skipErr, err)
				return
			}
		}
	}
}

func (r *RangeN[C, R]) Err() error { return r.err }

func (r *RangeN[C, R]) MoveMask() Mask { return r.mask }

func (r *RangeN[C, R]) Temporaries() int { return r.store.len() }
