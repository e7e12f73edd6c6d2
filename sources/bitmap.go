// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sources

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"code.hybscloud.com/zipseq"
)

// Bitmap is a sorted set of uint32 values.
//
// Its cursor locates values by rank. The rank range is fixed when the
// cursor is created; if values are removed while a combinator is traversing
// the bitmap, the cursor fails to advance instead of skipping or repeating
// values.
type Bitmap struct {
	b *roaring.Bitmap
}

// NewBitmap creates a bitmap holding vs.
func NewBitmap(vs ...uint32) *Bitmap {
	return &Bitmap{b: roaring.BitmapOf(vs...)}
}

// FromRoaring wraps an existing roaring bitmap.
func FromRoaring(b *roaring.Bitmap) *Bitmap { return &Bitmap{b: b} }

func (m *Bitmap) Add(v uint32) { m.b.Add(v) }

func (m *Bitmap) Remove(v uint32) { m.b.Remove(v) }

func (m *Bitmap) Contains(v uint32) bool { return m.b.Contains(v) }

func (m *Bitmap) Len() int { return int(m.b.GetCardinality()) }

// Roaring returns the underlying bitmap.
func (m *Bitmap) Roaring() *roaring.Bitmap { return m.b }

func (m *Bitmap) Begin() BitmapCursor {
	c := BitmapCursor{b: m.b, n: m.b.GetCardinality()}
	if c.n > 0 {
		c.v = m.b.Minimum()
	}
	return c
}

func (m *Bitmap) End() BitmapCursor {
	n := m.b.GetCardinality()
	return BitmapCursor{b: m.b, i: n, n: n}
}

// Relocate hands the bitmap to a combinator. Values are read-only, so move
// is ignored.
func (m *Bitmap) Relocate(bool) zipseq.Sequence[BitmapCursor, uint32] { return m }

// BitmapCursor is a rank position in a [Bitmap].
type BitmapCursor struct {
	b *roaring.Bitmap
	i uint64
	n uint64
	v uint32
}

func (c BitmapCursor) Deref() uint32 { return c.v }

// Next moves to the next rank. It fails if the bitmap no longer holds a
// value at that rank.
func (c BitmapCursor) Next() (BitmapCursor, error) {
	next := c
	next.i++
	if next.i >= next.n {
		next.v = 0
		return next, nil
	}
	v, err := c.b.Select(uint32(next.i))
	if err != nil {
		return c, fmt.Errorf("sources: bitmap rank %d: %w", next.i, err)
	}
	next.v = v
	return next, nil
}

func (c BitmapCursor) Equal(o BitmapCursor) bool { return c.i == o.i }

// Bits borrows m.
func Bits(m *Bitmap) zipseq.Arg[BitmapCursor, uint32] {
	return zipseq.Borrow[BitmapCursor, uint32](m)
}

// TempBits hands m over to the combinator.
func TempBits(m *Bitmap) zipseq.Arg[BitmapCursor, uint32] {
	return zipseq.Own[BitmapCursor, uint32](m)
}
