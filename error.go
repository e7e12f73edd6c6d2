// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zipseq

import (
	"errors"
	"strconv"
)

// SlotError reports a cursor that failed to advance.
// The pack that returned it is unchanged: every slot is still at the
// position it held before the failed advance.
type SlotError struct {
	Slot int
	Err  error
}

func (e *SlotError) Error() string {
	return "zipseq: slot " + strconv.Itoa(e.Slot) + ": " + e.Err.Error()
}

// Unwrap returns the error raised by the cursor.
func (e *SlotError) Unwrap() error { return e.Err }

func slotError(slot int, err error) error {
	return &SlotError{Slot: slot, Err: err}
}

// joinErr returns err alone when prev is nil.
func joinErr(prev, err error) error {
	if prev == nil {
		return err
	}
	return errors.Join(prev, err)
}
