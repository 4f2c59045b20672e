package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"

	"github.com/coreman2200/tinyws2812/internal/config"
	"github.com/coreman2200/tinyws2812/ws2812"
)

// The console fallback is a drawer like the SPI device it stands in for,
// sized to the strip.
func TestConsoleFallbackIsDrawer(t *testing.T) {
	var d display.Drawer = screen.New(4)
	assert.Equal(t, 4, d.Bounds().Dx())
}

// The driver sink hands back the backend's closer so the mapping or spidev
// handle is released on shutdown.
func TestBuildSinkDriverReturnsCloser(t *testing.T) {
	cfg := config.Config{Driver: "sim", Leds: 2}
	require.NoError(t, cfg.Validate())

	sink, closer := buildSink(&cfg, "driver")
	require.NotNil(t, sink)
	require.NotNil(t, closer)

	sink([]ws2812.RGB{{R: 1, G: 2, B: 3}, {}})
	assert.NoError(t, closer.Close())
}

func TestBuildSinkDefaultIsNoop(t *testing.T) {
	cfg := config.Config{Driver: "sim", Leds: 1}
	sink, closer := buildSink(&cfg, "none")
	require.NotNil(t, sink)
	sink(nil)
	assert.NoError(t, closer.Close())
}
