// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq

// Element views: one dereference of every slot of a pack.
// Field Vi holds slot i. Its type is the slot's dereference type, so
// per-slot mutability is a static property: a [Ref] field can be assigned
// through, a plain value field cannot.
//
// A view is valid for one step; the next advance invalidates it.

// View2 is the element view of a two-slot pack.
type View2[A, B any] struct {
	V0 A
	V1 B
}

// Values returns the slots in order.
func (v View2[A, B]) Values() (A, B) { return v.V0, v.V1 }

// View3 is the element view of a three-slot pack.
type View3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// Values returns the slots in order.
func (v View3[A, B, C]) Values() (A, B, C) { return v.V0, v.V1, v.V2 }

// View4 is the element view of a four-slot pack.
type View4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Values returns the slots in order.
func (v View4[A, B, C, D]) Values() (A, B, C, D) { return v.V0, v.V1, v.V2, v.V3 }
