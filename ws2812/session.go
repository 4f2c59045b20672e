package ws2812

import "time"

// The interrupt-enable bit, or its hosted stand-in, the scheduler state of
// the calling thread, is a single piece of machine state, so the
// prepare/close bracket is process wide: at most one bracket is open at a
// time, no matter how many devices exist. Nested Prepare calls are no-ops,
// as is Close without an open bracket.
var (
	prepared       bool
	restorePreempt func()
)

// Prepare opens a transmission bracket: it snapshots the platform's
// preemption state and masks it, exactly once. Calling Prepare again before
// Close does nothing, so loops may call it defensively.
//
// Every Transmit call must happen between Prepare and Close. The driver
// cannot detect a missing bracket; skipping it merely produces garbage on
// the strip.
func (d *Device) Prepare() {
	if prepared {
		return
	}
	restorePreempt = d.port.MaskPreemption()
	prepared = true
}

// Close ends the bracket: it restores the preemption state captured by the
// first Prepare and then blocks for the device's reset time so the chain
// latches. Without an open bracket Close returns immediately: no state
// change, no reset wait.
func (d *Device) Close() {
	if !prepared {
		return
	}
	restorePreempt()
	restorePreempt = nil
	prepared = false
	d.WaitReset()
}

// WaitReset blocks for the device's reset time. Call it inside a bracket to
// restart addressing from the first LED without ending the bracket.
func (d *Device) WaitReset() {
	busyWait(d.rst)
}

// busyWait spins rather than sleeps: reset times sit near or below
// scheduler granularity and the wait must not introduce a suspension point
// while preemption is masked.
func busyWait(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}
