// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/zipseq"
)

const propertyN = 1000

// randSlice returns a slice of length [0, 32] holding base, base+1, ...
func randSlice(rng *rand.Rand, base int) []int {
	s := make([]int, rng.IntN(33))
	for i := range s {
		s[i] = base + i
	}
	return s
}

// TestPropertyShortest: Zip3 yields exactly min(len) tuples, in order.
func TestPropertyShortest(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b, c := randSlice(rng, 0), randSlice(rng, 100), randSlice(rng, 200)
		want := min(len(a), len(b), len(c))

		n := 0
		for v := range zipseq.Zip3(zipseq.Const(a), zipseq.Mut(b), zipseq.TempConst(c)).All() {
			x, y, z := v.Values()
			if x != n || y.Get() != 100+n || z != 200+n {
				t.Fatalf("step %d: got (%d, %d, %d)", n, x, y.Get(), z)
			}
			n++
		}
		if n != want {
			t.Fatalf("got %d steps, want %d (lens %d %d %d)", n, want, len(a), len(b), len(c))
		}
	}
}

// TestPropertyZipNShortest: ZipN over a random number of sources agrees with min(len).
func TestPropertyZipNShortest(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		k := 1 + rng.IntN(6)
		args := make([]zipseq.Arg[zipseq.ConstCursor[int], int], k)
		want := -1
		for i := range args {
			s := randSlice(rng, 0)
			args[i] = zipseq.Const(s)
			if want < 0 || len(s) < want {
				want = len(s)
			}
		}

		n := 0
		for row := range zipseq.ZipN(args[0], args[1:]...).All() {
			for i, x := range row {
				if x != n {
					t.Fatalf("slot %d step %d: got %d", i, n, x)
				}
			}
			n++
		}
		if n != want {
			t.Fatalf("got %d steps, want %d", n, want)
		}
	}
}

// TestPropertySkip: Skip(slot, k) offsets only that slot and clamps at its end.
func TestPropertySkip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randSlice(rng, 0), randSlice(rng, 0)
		k := rng.IntN(40) - 4
		want := min(len(a), max(len(b)-max(k, 0), 0))

		n := 0
		for x, y := range zipseq.Zip2(zipseq.Const(a), zipseq.Const(b)).Skip(1, k).All() {
			if y != x+max(k, 0) {
				t.Fatalf("k=%d: got (%d, %d)", k, x, y)
			}
			n++
		}
		if n != want {
			t.Fatalf("k=%d: got %d steps, want %d", k, n, want)
		}
	}
}

// TestPropertyRollback: a failed advance leaves every slot where it was.
func TestPropertyRollback(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randSlice(rng, 0)
		failAt := 1 + rng.IntN(40)
		r := zipseq.Zip3(zipseq.Const(a), failing(40, failAt), zipseq.Count())

		p := r.Begin()
		end := r.End()
		steps := 0
		for !p.Equal(end) {
			if err := p.Advance(); err != nil {
				x, y, c := p.Deref().Values()
				if x != steps || y != steps || c != steps {
					t.Fatalf("failAt=%d: got (%d, %d, %d) after %d steps", failAt, x, y, c, steps)
				}
				break
			}
			steps++
		}
		if want := min(len(a), failAt-1); steps != want {
			t.Fatalf("failAt=%d len=%d: got %d steps, want %d", failAt, len(a), steps, want)
		}
	}
}
