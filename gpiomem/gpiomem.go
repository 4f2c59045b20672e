package gpiomem

import (
	"fmt"

	"github.com/coreman2200/tinyws2812/ws2812"

	"github.com/coreman2200/tinyws2812/internal/rt"
)

// Register word indices into the GPIO bank (BCM283x datasheet chapter 6).
const (
	regFsel0 = 0  // GPFSEL0, 3 mode bits per pin, 10 pins per word
	regSet0  = 7  // GPSET0, write 1 to drive high
	regClr0  = 10 // GPCLR0, write 1 to drive low

	bankPins = 32 // pins addressed by GPSET0/GPCLR0
)

// Opts configures Open.
type Opts struct {
	// Pins are the BCM numbers of the data lines, one per chain driven in
	// parallel. All of them must fall into bank 0 so a single register
	// write toggles every chain at once.
	Pins []int
}

// Port is a resolved GPIO bank implementing ws2812.Port. Obtain it through
// Open and release the mapping with Close.
type Port struct {
	mem  []uint32 // mapped register bank
	raw  []byte   // backing mapping, kept for munmap
	mask uint32   // OR of all driven pins

	tm pulses
}

// pinMask folds the pin set into the bank's set/clear mask. Every pin must
// address the same output register; a pin from another bank is a
// configuration mistake, not something transmission could recover from.
func pinMask(pins []int) (uint32, error) {
	if len(pins) == 0 {
		return 0, &ws2812.ConfigError{Reason: "no data pins given"}
	}
	var mask uint32
	for _, p := range pins {
		if p < 0 || p >= bankPins {
			return 0, &ws2812.ConfigError{
				Reason: fmt.Sprintf("GPIO%d is outside the bank driven by GPSET0/GPCLR0", p),
			}
		}
		mask |= 1 << uint(p)
	}
	return mask, nil
}

// WriteByte implements ws2812.Port: 8 bits, MSB first, each bit a high
// phase followed by a low phase whose calibrated lengths encode the value.
//
// Kept out of line so the cycle structure does not change with the caller.
//
//go:noinline
func (p *Port) WriteByte(b byte) {
	for i := 0; i < 8; i++ {
		if b&0x80 != 0 {
			p.mem[regSet0] = p.mask
			spin(p.tm.oneHigh)
			p.mem[regClr0] = p.mask
			spin(p.tm.oneLow)
		} else {
			p.mem[regSet0] = p.mask
			spin(p.tm.zeroHigh)
			p.mem[regClr0] = p.mask
			spin(p.tm.zeroLow)
		}
		b <<= 1
	}
}

// MaskPreemption implements ws2812.Port.
func (p *Port) MaskPreemption() func() {
	return rt.Freeze()
}
