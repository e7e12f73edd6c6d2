// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sources

import (
	"slices"
	"sort"

	"github.com/iancoleman/orderedmap"

	"code.hybscloud.com/zipseq"
)

// OrderedMap is a string-keyed map that iterates in insertion order.
type OrderedMap[V any] struct {
	m *orderedmap.OrderedMap
}

// NewOrderedMap creates an empty map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{m: orderedmap.New()}
}

// Set assigns v to k. A new key is appended to the iteration order; an
// existing key keeps its position.
func (m *OrderedMap[V]) Set(k string, v V) { m.m.Set(k, v) }

// Get returns the value of k.
func (m *OrderedMap[V]) Get(k string) (V, bool) {
	x, ok := m.m.Get(k)
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := x.(V)
	return v, ok
}

// Delete removes k.
func (m *OrderedMap[V]) Delete(k string) { m.m.Delete(k) }

// Keys returns a copy of the keys in iteration order.
func (m *OrderedMap[V]) Keys() []string { return slices.Clone(m.m.Keys()) }

func (m *OrderedMap[V]) Len() int { return len(m.m.Keys()) }

// SortKeys reorders iteration lexically.
func (m *OrderedMap[V]) SortKeys() { m.m.SortKeys(sort.Strings) }

// Begin returns a cursor at the first key of a snapshot of the current key
// order.
func (m *OrderedMap[V]) Begin() MapCursor[V] {
	return MapCursor[V]{m: m, keys: m.Keys()}
}

// End returns the one-past-the-last cursor of the current key order. Cursors
// compare by position only, so End carries no keys.
func (m *OrderedMap[V]) End() MapCursor[V] {
	return MapCursor[V]{m: m, i: m.Len()}
}

// Relocate hands the map to a combinator. With move set, [Entry.Take]
// deletes the entry it reads.
func (m *OrderedMap[V]) Relocate(move bool) zipseq.Sequence[MapCursor[V], Entry[V]] {
	return &ownedMap[V]{m: m, move: move}
}

type ownedMap[V any] struct {
	m    *OrderedMap[V]
	move bool
}

func (o *ownedMap[V]) Begin() MapCursor[V] {
	c := o.m.Begin()
	c.move = o.move
	return c
}

func (o *ownedMap[V]) End() MapCursor[V] {
	c := o.m.End()
	c.move = o.move
	return c
}

// MapCursor is a position in a snapshot of the key order of an [OrderedMap],
// taken by Begin. Inserting, deleting or sorting keys afterwards does not
// change the keys a range visits: a key deleted since the snapshot reads as
// the zero value, and [Entry.Set] on it inserts it again at the end.
type MapCursor[V any] struct {
	m    *OrderedMap[V]
	keys []string
	i    int
	move bool
}

func (c MapCursor[V]) Deref() Entry[V] {
	return Entry[V]{m: c.m, key: c.keys[c.i], move: c.move}
}

func (c MapCursor[V]) Next() (MapCursor[V], error) {
	c.i++
	return c, nil
}

func (c MapCursor[V]) Equal(o MapCursor[V]) bool { return c.i == o.i }

func (MapCursor[V]) Infallible() {}

// Moves reports whether [Entry.Take] resets the entries it reads.
func (c MapCursor[V]) Moves() bool { return c.move }

// Entry is an assignable view of one map entry.
type Entry[V any] struct {
	m    *OrderedMap[V]
	key  string
	move bool
}

func (e Entry[V]) Key() string { return e.key }

// Value returns the current value of the entry.
func (e Entry[V]) Value() V {
	v, _ := e.m.Get(e.key)
	return v
}

// Set writes v through to the map.
func (e Entry[V]) Set(v V) { e.m.Set(e.key, v) }

// Take reads the value. On a moving slot the entry's value is reset to the
// zero value, so each position is moved from once.
func (e Entry[V]) Take() V {
	v := e.Value()
	if e.move {
		var zero V
		e.m.Set(e.key, zero)
	}
	return v
}

// Map borrows m.
func Map[V any](m *OrderedMap[V]) zipseq.Arg[MapCursor[V], Entry[V]] {
	return zipseq.Borrow[MapCursor[V], Entry[V]](m)
}

// TempMap hands m over to the combinator.
func TempMap[V any](m *OrderedMap[V]) zipseq.Arg[MapCursor[V], Entry[V]] {
	return zipseq.Own[MapCursor[V], Entry[V]](m)
}
