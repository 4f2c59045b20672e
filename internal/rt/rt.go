// Package rt holds the runtime knobs the bit-banging backends share. On a
// hosted kernel there is no cli/sei; the closest substitutes are pinning
// the goroutine to its thread, holding off the garbage collector and, where
// the platform allows it, moving the thread to a realtime scheduling class.
package rt

import (
	"runtime"
	"runtime/debug"
)

// Freeze masks as much preemption as the platform offers and returns the
// matching thaw. The two always pair up: thaw restores exactly the state
// Freeze captured.
func Freeze() func() {
	runtime.LockOSThread()
	gc := debug.SetGCPercent(-1)
	thawSched := realtime()
	return func() {
		thawSched()
		debug.SetGCPercent(gc)
		runtime.UnlockOSThread()
	}
}
