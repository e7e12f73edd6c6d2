// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq_test

import (
	"errors"
	"fmt"
	"testing"

	"code.hybscloud.com/zipseq"
)

func TestSlotError(t *testing.T) {
	err := error(&zipseq.SlotError{Slot: 2, Err: errBoom})
	if got, want := err.Error(), "zipseq: slot 2: boom"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if !errors.Is(err, errBoom) {
		t.Fatal("errors.Is does not see the cursor error")
	}

	wrapped := fmt.Errorf("combine: %w", err)
	var se *zipseq.SlotError
	if !errors.As(wrapped, &se) || se.Slot != 2 {
		t.Fatalf("errors.As(%v) = %v", wrapped, se)
	}
}

func TestRef(t *testing.T) {
	x := 3
	r := zipseq.RefOf(&x)
	if r.Moves() || r.Get() != 3 || r.Ptr() != &x {
		t.Fatal("RefOf does not alias")
	}
	r.Set(4)
	if x != 4 {
		t.Fatalf("got %d, want 4", x)
	}

	m := zipseq.MovingRefOf(&x)
	if got := m.Get(); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
	if x != 0 || m.Get() != 0 {
		t.Fatalf("moving read left %d", x)
	}
}

func TestPolicyAndMask(t *testing.T) {
	if !zipseq.MoveFromTemporaries.Has(zipseq.MoveFromTemporaries) || zipseq.None.Has(zipseq.MoveFromTemporaries) {
		t.Fatal("Policy.Has")
	}
	if !zipseq.None.Has(zipseq.None) {
		t.Fatal("every policy has None")
	}
	m := zipseq.Mask(0b101)
	for slot, want := range map[int]bool{-1: false, 0: true, 1: false, 2: true, 64: false} {
		if got := m.Has(slot); got != want {
			t.Fatalf("Mask.Has(%d) = %v, want %v", slot, got, want)
		}
	}
}

func TestArgOwned(t *testing.T) {
	if zipseq.Mut([]int{1}).Owned() || zipseq.Str("s").Owned() || zipseq.Count().Owned() {
		t.Fatal("borrowed argument reports owned")
	}
	if !zipseq.Temp([]int{1}).Owned() || !zipseq.TempConst([]int{1}).Owned() {
		t.Fatal("owned argument reports borrowed")
	}
}
