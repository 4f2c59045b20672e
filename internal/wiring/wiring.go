// Package wiring turns a config.Config into a resolved ws2812.Port. It is
// the only place the example commands touch backend packages or periph
// host initialization.
package wiring

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/coreman2200/tinyws2812/gpiomem"
	"github.com/coreman2200/tinyws2812/internal/config"
	"github.com/coreman2200/tinyws2812/pinport"
	"github.com/coreman2200/tinyws2812/spiout"
	"github.com/coreman2200/tinyws2812/ws2812"
)

// Resolve builds the port named by cfg.Driver. The returned closer releases
// whatever the backend holds (register mapping, spidev handle); it may be
// nil-safe but is never nil itself.
func Resolve(cfg *config.Config) (ws2812.Port, io.Closer, error) {
	switch cfg.Driver {
	case "gpiomem":
		p, err := gpiomem.Open(&gpiomem.Opts{Pins: cfg.Pins})
		if err != nil {
			return nil, nil, err
		}
		return p, p, nil

	case "pin":
		if len(cfg.Pins) != 1 {
			return nil, nil, &ws2812.ConfigError{
				Reason: fmt.Sprintf("pin driver takes exactly one pin, got %d", len(cfg.Pins)),
			}
		}
		if _, err := host.Init(); err != nil {
			return nil, nil, fmt.Errorf("wiring: host init: %w", err)
		}
		name := fmt.Sprintf("GPIO%d", cfg.Pins[0])
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, nil, &ws2812.ConfigError{Reason: "no such pin " + name}
		}
		p, err := pinport.New(pin)
		if err != nil {
			return nil, nil, err
		}
		return p, nopCloser{}, nil

	case "spi":
		if _, err := host.Init(); err != nil {
			return nil, nil, fmt.Errorf("wiring: host init: %w", err)
		}
		sp, err := spireg.Open(cfg.SPI.Dev)
		if err != nil {
			return nil, nil, fmt.Errorf("wiring: open SPI port %q: %w", cfg.SPI.Dev, err)
		}
		p, err := spiout.New(sp, physic.Frequency(cfg.SPI.SpeedHz)*physic.Hertz)
		if err != nil {
			sp.Close()
			return nil, nil, err
		}
		return p, sp, nil

	case "sim":
		log.Info().Msg("wiring: simulated port, nothing leaves the process")
		return &simPort{}, nopCloser{}, nil
	}
	return nil, nil, &ws2812.ConfigError{Reason: fmt.Sprintf("unknown driver %q", cfg.Driver)}
}

// simPort swallows bytes. It lets the commands run on a dev machine with
// no LEDs attached.
type simPort struct{}

func (*simPort) WriteByte(byte)         {}
func (*simPort) MaskPreemption() func() { return func() {} }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
