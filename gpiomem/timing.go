package gpiomem

import "time"

// WS2812 pulse widths in nanoseconds. A bit always occupies totalPeriod;
// the value is encoded in how long the high phase lasts. The only critical
// parameter is the minimum high time of a "0"; everything else has about
// 150ns of slack.
const (
	zeroPulse   = 350  // high time of a "0" bit
	onePulse    = 900  // high time of a "1" bit
	totalPeriod = 1250 // full bit period either way
)

// Build-time guards: edits that leave a "1" with no low phase, or a "0"
// pulse at least as long as a "1", make the encoding meaningless and must
// refuse to compile (constant underflow on the unsigned conversions).
const (
	_ = uint(totalPeriod - onePulse - 1)
	_ = uint(onePulse - zeroPulse - 1)
)

// edgeOverhead is the assumed cost of the register store that produces an
// edge, subtracted from each phase before converting it to spin
// iterations. Uncached peripheral stores on a Pi are in this range.
const edgeOverhead = 60 // ns

// pulses holds the calibrated spin counts for the four phases of the two
// bit encodings.
type pulses struct {
	oneHigh, oneLow   uint32
	zeroHigh, zeroLow uint32
}

// calibrate measures the spin loop against the monotonic clock and derives
// iteration counts for every phase. The shortest of several probes is
// used: interference can only make a probe slower, never faster.
func calibrate() pulses {
	const probe = 1 << 18
	best := time.Duration(1<<63 - 1)
	for trial := 0; trial < 8; trial++ {
		start := time.Now()
		spin(probe)
		if d := time.Since(start); d < best {
			best = d
		}
	}
	perNs := float64(probe) / float64(best.Nanoseconds())
	return pulses{
		oneHigh:  iterations(onePulse, perNs),
		oneLow:   iterations(totalPeriod-onePulse, perNs),
		zeroHigh: iterations(zeroPulse, perNs),
		zeroLow:  iterations(totalPeriod-zeroPulse, perNs),
	}
}

// iterations converts a phase width to spin iterations, discounting the
// edge store itself. Phases never collapse to zero: one iteration is kept
// so the store and the wait cannot merge.
func iterations(ns int, perNs float64) uint32 {
	ns -= edgeOverhead
	if ns < 0 {
		ns = 0
	}
	n := uint32(float64(ns) * perNs)
	if n == 0 {
		n = 1
	}
	return n
}

// spinSink keeps the spin loop body from being folded away.
var spinSink uint32

// spin burns n iterations of a fixed-cost loop. It stays out of line so
// calibration and transmission run the identical instruction sequence.
//
//go:noinline
func spin(n uint32) {
	for i := uint32(0); i < n; i++ {
		spinSink++
	}
}
