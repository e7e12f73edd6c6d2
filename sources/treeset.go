// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sources adapts third-party containers to the zipseq sequence
// capability.
//
//   - [TreeSet]: sorted set backed by a B-tree, read-only slots
//   - [OrderedMap]: insertion-ordered map, slots are assignable [Entry] views
//   - [Bitmap]: compressed uint32 set, read-only slots with a fallible cursor
//
// Every container is [zipseq.Relocatable]: passing it with the Temp helpers
// hands the container itself to the combinator without copying.
package sources

import (
	"github.com/tidwall/btree"

	"code.hybscloud.com/zipseq"
)

// TreeSet is a sorted set of keys.
type TreeSet[K any] struct {
	tr *btree.BTreeG[K]
}

// NewTreeSet creates an empty set ordered by cmp.
func NewTreeSet[K any](degree int, cmp func(K, K) int) *TreeSet[K] {
	tr := btree.NewBTreeGOptions(
		func(a, b K) bool {
			return cmp(a, b) < 0
		},
		btree.Options{
			NoLocks: true,
			Degree:  degree,
		},
	)
	return &TreeSet[K]{tr: tr}
}

// Insert adds k. It reports whether k was already present.
func (s *TreeSet[K]) Insert(k K) (replaced bool) {
	_, replaced = s.tr.Set(k)
	return replaced
}

// Delete removes k. It reports whether k was present.
func (s *TreeSet[K]) Delete(k K) (deleted bool) {
	_, deleted = s.tr.Delete(k)
	return deleted
}

// Has reports whether k is in the set.
func (s *TreeSet[K]) Has(k K) bool {
	_, ok := s.tr.Get(k)
	return ok
}

// Len returns the number of keys.
func (s *TreeSet[K]) Len() int {
	if s == nil {
		return 0
	}
	return s.tr.Len()
}

// Begin returns a cursor at the smallest key.
func (s *TreeSet[K]) Begin() TreeCursor[K] { return TreeCursor[K]{tr: s.tr} }

// End returns the one-past-the-largest cursor.
func (s *TreeSet[K]) End() TreeCursor[K] { return TreeCursor[K]{tr: s.tr, i: s.tr.Len()} }

// Relocate hands the set to a combinator. Keys are read-only, so move is
// ignored.
func (s *TreeSet[K]) Relocate(bool) zipseq.Sequence[TreeCursor[K], K] { return s }

// TreeCursor is an ordinal position in a [TreeSet].
type TreeCursor[K any] struct {
	tr *btree.BTreeG[K]
	i  int
}

func (c TreeCursor[K]) Deref() K {
	k, _ := c.tr.GetAt(c.i)
	return k
}

func (c TreeCursor[K]) Next() (TreeCursor[K], error) {
	c.i++
	return c, nil
}

func (c TreeCursor[K]) Equal(o TreeCursor[K]) bool { return c.i == o.i }

func (TreeCursor[K]) Infallible() {}

// Tree borrows s.
func Tree[K any](s *TreeSet[K]) zipseq.Arg[TreeCursor[K], K] {
	return zipseq.Borrow[TreeCursor[K], K](s)
}

// TempTree hands s over to the combinator.
func TempTree[K any](s *TreeSet[K]) zipseq.Arg[TreeCursor[K], K] {
	return zipseq.Own[TreeCursor[K], K](s)
}
