// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package zipseq combines independently advancing sequences into a single
// lazy sequence of tuples.
//
// A combinator draws one element from each source per step and stops as soon
// as any source is exhausted. Sources may be borrowed from the caller or
// owned by the combinator, may be mutable or read-only, and may fail to
// advance; the combinator handles each case without per-step overhead when
// it is not needed.
//
// # Design Philosophy
//
// zipseq provides:
//   - F-bounded cursor interfaces for compile-time dispatch over concrete cursor types
//   - Fixed-arity heterogeneous packs with no interface boxing per step
//   - Static mutability: a slot's dereference type decides whether it is assignable
//   - Strong guarantee on advance, skipped entirely for infallible cursors
//
// # Sequence Capability
//
// A source is anything with a begin and an end cursor:
//
//   - [Cursor]: type Cursor[C Cursor[C, R], R any] with Deref, Next and Equal
//   - [Sequence]: Begin and End
//   - [Relocatable]: a Sequence that can move its content into combinator storage
//   - [Infallible]: marker for cursors whose Next never fails
//
// Built-in sources:
//
//   - [Slice] / [Mut]: mutable slice, slots are [Ref]
//   - [ConstSlice] / [Const]: read-only slice, slots are element copies
//   - [String] / [Str]: read-only bytes of a string
//   - [Counter] / [Count] / [CountFrom]: infinite counting sequence
//
// Package sources adapts B-tree sets, ordered maps and roaring bitmaps.
//
// # Arguments and Temporary Storage
//
// Every source is passed as an [Arg]:
//
//   - [Borrow]: the caller keeps ownership; the combinator holds cursors only
//   - [Own]: the content is relocated into storage owned by the combinator
//   - [Temp] / [TempConst]: owned slices
//
// Storage for owned arguments is reserved once at construction and never
// grows, so cursors into it stay valid for the lifetime of the combinator.
//
// # Combinators
//
//   - [Zip1] to [Zip4]: heterogeneous sources, views [View2] to [View4]
//   - [Zip1With] to [Zip4With]: same with a [Policy]
//   - [ZipN] / [ZipNWith]: run-time number of sources of one cursor type
//   - [Enumerate], [Enumerate2], [Enumerate3], [EnumerateWith], [EnumerateFrom]: position plus sources
//   - [Indexed]: enumerate a literal list of values
//
// Each combinator returns a range with All for range-over-func iteration,
// Skip to move a single slot ahead, Err for the error that ended the last
// traversal, and Begin/End so that a range is itself a [Sequence].
//
// # Move Policy
//
// With [MoveFromTemporaries], [Ref.Get] on an owned slot moves the element out
// and leaves the zero value behind. Borrowed slots always copy, and so do
// read-only slots. [Range2.MoveMask] reports which slots move; a slot moves
// when its cursor is a [Mover] reporting true.
//
// # Strong Guarantee
//
// A pack advances every slot or none. When all cursors are [Infallible] the
// pack advances in place. Otherwise it is copied first and restored if a slot
// fails; the failure is a [*SlotError] carrying the slot index:
//
//	for v := range r.All() {
//		use(v)
//	}
//	if err := r.Err(); err != nil {
//		var se *zipseq.SlotError
//		if errors.As(err, &se) {
//			log.Printf("slot %d: %v", se.Slot, se.Err)
//		}
//	}
//
// Contract violations panic with a "zipseq:" prefix: a zero [Arg], or a Skip
// slot outside the combinator's arity.
package zipseq
