// Package spiout pushes the WS2812 waveform through an SPI peripheral
// instead of bit-banging a pin.
//
// Every protocol bit expands to three SPI bits (0b100 for a "0", 0b110
// for a "1"), so a 2.4MHz SPI clock reproduces the 800kHz bit stream with
// hardware-exact edges. MOSI is the data line; MISO, SCLK and CS stay
// unused. This trades the multi-chain parallelism of the register backends
// for immunity against scheduler jitter.
package spiout

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/coreman2200/tinyws2812/ws2812"
)

// DefaultFreq is three times the 800kHz WS2812 bit rate.
const DefaultFreq = 2400 * physic.KiloHertz

// Port feeds encoded bytes to an SPI connection. It implements
// ws2812.Port.
type Port struct {
	conn spi.Conn
	lut  [256][3]byte
	err  error
}

// New connects to the SPI port at freq (DefaultFreq when zero) and builds
// the expansion table.
func New(p spi.Port, freq physic.Frequency) (*Port, error) {
	if p == nil {
		return nil, &ws2812.ConfigError{Reason: "no SPI port given"}
	}
	if freq == 0 {
		freq = DefaultFreq
	}
	conn, err := p.Connect(freq, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("spiout: connect: %w", err)
	}

	s := &Port{conn: conn}
	for v := 0; v < 256; v++ {
		s.lut[v] = expand(byte(v))
	}
	return s, nil
}

// expand maps the 8 bits of b, MSB first, onto 24 SPI bits.
func expand(b byte) [3]byte {
	var out uint32
	for i := 7; i >= 0; i-- {
		if b&(1<<uint(i)) != 0 {
			out = out<<3 | 0b110
		} else {
			out = out<<3 | 0b100
		}
	}
	return [3]byte{byte(out >> 16), byte(out >> 8), byte(out)}
}

// WriteByte implements ws2812.Port. Transfer errors cannot surface
// mid-stream; they are latched and available through Err after the
// bracket.
func (s *Port) WriteByte(b byte) {
	enc := s.lut[b]
	if err := s.conn.Tx(enc[:], nil); err != nil && s.err == nil {
		s.err = fmt.Errorf("spiout: tx: %w", err)
	}
}

// MaskPreemption implements ws2812.Port. The SPI controller clocks the
// waveform, so nothing needs masking.
func (s *Port) MaskPreemption() func() {
	return func() {}
}

// Err returns the first transfer error since the last call, clearing it.
func (s *Port) Err() error {
	err := s.err
	s.err = nil
	return err
}
