package wiring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/tinyws2812/internal/config"
	"github.com/coreman2200/tinyws2812/ws2812"
)

func TestResolveUnknownDriver(t *testing.T) {
	_, _, err := Resolve(&config.Config{Driver: "dma"})
	var cerr *ws2812.ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestResolvePinWantsOnePin(t *testing.T) {
	_, _, err := Resolve(&config.Config{Driver: "pin", Pins: []int{1, 2}})
	var cerr *ws2812.ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestResolveGpiomemBadPins(t *testing.T) {
	_, _, err := Resolve(&config.Config{Driver: "gpiomem", Pins: []int{40}})
	var cerr *ws2812.ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestResolveSim(t *testing.T) {
	p, c, err := Resolve(&config.Config{Driver: "sim"})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.NoError(t, c.Close())

	// The sim port must behave like any other: writable, maskable.
	d, err := ws2812.Configure(ws2812.Config{Port: p})
	require.NoError(t, err)
	d.Prepare()
	d.Transmit([]ws2812.RGB{{R: 1, G: 2, B: 3}})
	d.Close()
}
