// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package validator

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTerminator struct {
	calls atomic.Int32
}

func (f *fakeTerminator) Terminate(reason any) {
	f.calls.Add(1)
}

func TestArmNonPositiveDurationReturnsNil(t *testing.T) {
	g := Arm(&fakeTerminator{}, 0)
	assert.Nil(t, g)
	assert.False(t, g.WasCancelled())
	g.Disarm() // no-op on a nil guard, must not panic
}

func TestDisarmBeforeDeadlineNeverFires(t *testing.T) {
	term := &fakeTerminator{}
	g := Arm(term, time.Hour)

	g.Disarm()

	assert.False(t, g.WasCancelled())
	assert.EqualValues(t, 0, term.calls.Load())
}

func TestDeadlineFiresAndTerminates(t *testing.T) {
	term := &fakeTerminator{}
	g := Arm(term, 20*time.Millisecond)

	time.Sleep(100 * time.Millisecond)

	assert.True(t, g.WasCancelled())
	assert.EqualValues(t, 1, term.calls.Load())

	g.Disarm() // still safe after the watchdog already fired
}

func TestDisarmIsIdempotent(t *testing.T) {
	g := Arm(&fakeTerminator{}, time.Hour)
	g.Disarm()
	g.Disarm()
}
