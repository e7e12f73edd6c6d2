// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"code.hybscloud.com/zipseq"
)

func TestZipN(t *testing.T) {
	r := zipseq.ZipN(
		zipseq.Const([]string{"a", "b", "c"}),
		zipseq.Const([]string{"1", "2"}),
		zipseq.TempConst([]string{"x", "y", "z", "w"}),
	)
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if r.Temporaries() != 1 {
		t.Fatalf("Temporaries() = %d, want 1", r.Temporaries())
	}

	var got [][]string
	for row := range r.All() {
		got = append(got, slices.Clone(row))
	}
	want := [][]string{{"a", "1", "x"}, {"b", "2", "y"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ZipN (-want +got):\n%s", diff)
	}
}

func TestZipNSingle(t *testing.T) {
	n := 0
	for row := range zipseq.ZipN(zipseq.Const([]int{4, 5})).All() {
		if len(row) != 1 || row[0] != 4+n {
			t.Fatalf("got %v at step %d", row, n)
		}
		n++
	}
	if n != 2 {
		t.Fatalf("got %d steps, want 2", n)
	}
}

func TestZipNSkipAndWrite(t *testing.T) {
	F := make([]int, 10)
	F[1] = 1
	r := zipseq.ZipN(zipseq.Mut(F), zipseq.Mut(F), zipseq.Mut(F)).Skip(1, 1).Skip(2, 2)
	for row := range r.All() {
		row[2].Set(row[0].Get() + row[1].Get())
	}
	if F[9] != 34 {
		t.Fatalf("F[9] = %d, want 34", F[9])
	}
}

func TestZipNMovePolicy(t *testing.T) {
	r := zipseq.ZipNWith(zipseq.MoveFromTemporaries, zipseq.Mut([]int{1}), zipseq.Temp([]int{2}))
	if m := r.MoveMask(); m.Has(0) || !m.Has(1) {
		t.Fatalf("MoveMask() = %b, want slot 1 only", m)
	}
	for row := range r.All() {
		if row[1].Get() != 2 || row[1].Get() != 0 {
			t.Fatal("owned slot was not moved exactly once")
		}
	}
}

func TestZipNBeginIsIndependent(t *testing.T) {
	r := zipseq.ZipN(zipseq.Const([]int{1, 2, 3}), zipseq.Const([]int{4, 5, 6}))
	p := r.Begin()
	p, _ = p.Next()
	p, _ = p.Next()
	if got := p.Deref(); !slices.Equal(got, []int{3, 6}) {
		t.Fatalf("advanced pack = %v, want [3 6]", got)
	}
	q, err := p.Next()
	if err != nil || !q.Equal(r.End()) {
		t.Fatalf("Next() = arity %d, %v; want end", q.Len(), err)
	}
	if got := p.Deref(); !slices.Equal(got, []int{3, 6}) {
		t.Fatalf("Next moved its receiver: %v", got)
	}
	if got := r.Begin().Deref(); !slices.Equal(got, []int{1, 4}) {
		t.Fatalf("stored begin moved: %v", got)
	}
}

func TestZipNCopiesAreIndependent(t *testing.T) {
	r := zipseq.ZipN(zipseq.Const([]int{1, 2, 3}))
	p := r.Begin()
	q := p
	q, _ = q.Next()
	if got := p.Deref(); !slices.Equal(got, []int{1}) {
		t.Fatalf("copy advanced the original: %v", got)
	}
	if got := q.Deref(); !slices.Equal(got, []int{2}) {
		t.Fatalf("advanced copy = %v, want [2]", got)
	}
}

func TestZipNEndIsImmutable(t *testing.T) {
	r := zipseq.ZipN(zipseq.Const([]int{1, 2, 3}), zipseq.Const([]int{4, 5, 6}))
	e := r.End()
	moved, _ := e.Next()
	if moved.Equal(r.End()) {
		t.Fatal("Next did not move the end copy")
	}
	if !e.Equal(r.End()) {
		t.Fatal("Next moved its receiver")
	}

	for range 2 {
		n := 0
		for range r.All() {
			n++
		}
		if n != 3 {
			t.Fatalf("got %d steps, want 3", n)
		}
	}
}

func TestZipNStrongGuarantee(t *testing.T) {
	r := zipseq.ZipN(failing(10, 20), failing(10, 3), failing(10, 20))
	p := r.Begin()
	var err error
	for err == nil {
		var q zipseq.PackN[failCursor, int]
		if q, err = p.Next(); err == nil {
			p = q
		} else if got := q.Deref(); !slices.Equal(got, []int{2, 2, 2}) {
			t.Fatalf("failed Next returned %v, want [2 2 2]", got)
		}
	}
	if got := p.Deref(); !slices.Equal(got, []int{2, 2, 2}) {
		t.Fatalf("got %v, want [2 2 2]", got)
	}
	var se *zipseq.SlotError
	if !errors.As(err, &se) || se.Slot != 1 {
		t.Fatalf("got %v, want slot 1 error", err)
	}

	steps := 0
	for range r.All() {
		steps++
	}
	if steps != 3 || !errors.Is(r.Err(), errBoom) {
		t.Fatalf("got %d steps and %v, want 3 and errBoom", steps, r.Err())
	}
}
