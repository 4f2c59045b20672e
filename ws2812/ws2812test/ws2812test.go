// Package ws2812test provides a recording implementation of ws2812.Port
// for driver tests.
//
// The port emulates an 8 bit read-modify-write output register, the layout
// of AVR PORTx registers: driving high ORs the pin mask into the register,
// driving low ANDs its complement, and bits belonging to unrelated
// peripherals must survive a transmission untouched.
package ws2812test

import (
	"fmt"

	"github.com/coreman2200/tinyws2812/ws2812"
)

// Port records everything the driver does to it. Create it with New; the
// zero value has no pins resolved and drops every write.
type Port struct {
	// Reg is the current register contents. Seed unrelated bits through
	// New's reg argument to check they are preserved.
	Reg uint8

	// Bytes are the bytes shifted out, in order.
	Bytes []byte

	// Bits are the individual bit values emitted, MSB first per byte.
	Bits []bool

	// Writes is every raw store to the register, in order.
	Writes []uint8

	// Masks and Restores count MaskPreemption calls and calls of the
	// restore functions it returned.
	Masks    int
	Restores int

	maskhi uint8
	masklo uint8
}

// New resolves pins (bit positions 0..7) against the register's current
// contents reg, computing the same set/clear masks the hardware backends
// precompute. An empty pin set or a pin outside the register is a
// configuration error.
func New(reg uint8, pins ...uint8) (*Port, error) {
	if len(pins) == 0 {
		return nil, &ws2812.ConfigError{Reason: "no data pins given"}
	}
	var mask uint8
	for _, p := range pins {
		if p > 7 {
			return nil, &ws2812.ConfigError{
				Reason: fmt.Sprintf("pin %d does not address the same register as pins 0-7", p),
			}
		}
		mask |= 1 << p
	}
	return &Port{
		Reg:    reg,
		maskhi: mask | reg,
		masklo: ^mask & reg,
	}, nil
}

// WriteByte implements ws2812.Port. Each bit is recorded as a rising store
// followed by a falling store; the high/low hold times that distinguish a
// "1" from a "0" on real hardware are captured in Bits instead.
func (p *Port) WriteByte(b byte) {
	for i := 7; i >= 0; i-- {
		p.store(p.maskhi)
		p.Bits = append(p.Bits, b&(1<<uint(i)) != 0)
		p.store(p.masklo)
	}
	p.Bytes = append(p.Bytes, b)
}

// MaskPreemption implements ws2812.Port.
func (p *Port) MaskPreemption() func() {
	p.Masks++
	return func() {
		p.Restores++
	}
}

func (p *Port) store(v uint8) {
	p.Reg = v
	p.Writes = append(p.Writes, v)
}
