// Package pinport bit-bangs the WS2812 protocol over a periph.io GPIO pin.
//
// It is the portable backend: anything periph's host drivers expose as
// gpio.PinOut works. The pulse timing rides on how fast Out reaches the
// hardware, so it is only adequate with memory-mapped pin implementations
// (bcm283x and friends), not sysfs pins. Only a single data pin is
// supported: periph pins do not expose their register, so several chains
// in parallel need the gpiomem backend.
package pinport

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/coreman2200/tinyws2812/internal/rt"
	"github.com/coreman2200/tinyws2812/ws2812"
)

// Pulse widths, same constants as the register backends.
const (
	zeroPulse   = 350 * time.Nanosecond
	onePulse    = 900 * time.Nanosecond
	totalPeriod = 1250 * time.Nanosecond
)

// Port drives one WS2812 chain through a periph pin. It implements
// ws2812.Port.
type Port struct {
	pin gpio.PinOut
}

// New resolves pin into a port. The pin is switched to output and driven
// low here, once, not per transmission.
func New(pin gpio.PinOut) (*Port, error) {
	if pin == nil {
		return nil, &ws2812.ConfigError{Reason: "no data pin given"}
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("pinport: switching %s to output: %w", pin, err)
	}
	return &Port{pin: pin}, nil
}

// WriteByte implements ws2812.Port. Out errors are dropped: there is no
// time for an error path in the middle of a bit.
//
//go:noinline
func (p *Port) WriteByte(b byte) {
	for i := 0; i < 8; i++ {
		if b&0x80 != 0 {
			_ = p.pin.Out(gpio.High)
			hold(onePulse)
			_ = p.pin.Out(gpio.Low)
			hold(totalPeriod - onePulse)
		} else {
			_ = p.pin.Out(gpio.High)
			hold(zeroPulse)
			_ = p.pin.Out(gpio.Low)
			hold(totalPeriod - zeroPulse)
		}
		b <<= 1
	}
}

// MaskPreemption implements ws2812.Port.
func (p *Port) MaskPreemption() func() {
	return rt.Freeze()
}

// hold busy-waits on the monotonic clock. Coarser than the calibrated spin
// loop in gpiomem, but the pin call overhead dominates here anyway.
func hold(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}
