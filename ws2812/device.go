package ws2812

import "time"

// DefaultResetTime is the latch time recommended by the WS2812 datasheet.
// Many strips latch much faster, but 50µs is the safe default.
const DefaultResetTime = 50 * time.Microsecond

// Config describes one wiring setup: which resolved port drives the
// chain(s), the channel order of the LED batch, and how long the chain
// needs to latch.
type Config struct {
	// Port is the resolved output register shared by every chain in this
	// setup, produced by one of the backend packages.
	Port Port

	// Order is the color order of the LED batch, typically GRBOrder.
	Order ColorOrder

	// ResetTime is the low time after which the chain latches and
	// addressing restarts at the first LED. Zero selects
	// DefaultResetTime.
	ResetTime time.Duration
}

// Device is the handle for one configured WS2812 setup. It is immutable
// after Configure; changing the wiring means configuring a new Device.
type Device struct {
	port   Port
	rst    time.Duration
	rgbmap [3]uint8
}

// Configure validates cfg and resolves it into a Device. This is the only
// point where configuration errors surface: every later operation assumes
// a valid handle.
func Configure(cfg Config) (*Device, error) {
	if cfg.Port == nil {
		return nil, &ConfigError{Reason: "no devices to be driven"}
	}
	rst := cfg.ResetTime
	if rst < 0 {
		return nil, &ConfigError{Reason: "negative reset time"}
	}
	if rst == 0 {
		rst = DefaultResetTime
	}
	return &Device{
		port:   cfg.Port,
		rst:    rst,
		rgbmap: rgbMap(cfg.Order),
	}, nil
}

// ResetTime returns the configured latch duration.
func (d *Device) ResetTime() time.Duration {
	return d.rst
}

// Transmit shifts out one byte per channel for every pixel, reordered to
// the device's color order. The slice is read once, in order, and never
// buffered or copied.
//
// Transmit must run inside an open Prepare/Close bracket; this is not
// checked per call. Consecutive calls keep programming the chain from
// wherever the previous call stopped; call WaitReset first to start over
// from the first LED.
func (d *Device) Transmit(pxls []RGB) {
	for i := range pxls {
		ch := [3]uint8{pxls[i].R, pxls[i].G, pxls[i].B}
		for _, j := range d.rgbmap {
			d.port.WriteByte(ch[j])
		}
	}
}
