// Command wsbridge runs a demo animation and mirrors every frame to
// websocket clients, optionally driving local output at the same time:
// either the real driver pipeline or an NRZ-over-SPI drawer with a console
// fallback.
package main

import (
	"flag"
	"image"
	"io"
	"math"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/coreman2200/tinyws2812/internal/bridge"
	"github.com/coreman2200/tinyws2812/internal/config"
	"github.com/coreman2200/tinyws2812/internal/wiring"
	"github.com/coreman2200/tinyws2812/ws2812"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		addr       = flag.String("addr", "", "override websocket listen address")
		output     = flag.String("output", "none", "local output: none | driver | nrz")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := config.Default
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; using defaults")
	} else {
		cfg = *c
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad config")
	}

	hub := bridge.NewHub()
	http.HandleFunc("/ws", hub.Handler)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("serving frames")
		if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	sink, closer := buildSink(&cfg, *output)
	defer closer.Close()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	frame := make([]ws2812.RGB, cfg.Leds)
	start := time.Now()
	tick := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer tick.Stop()
	for {
		select {
		case <-tick.C:
			elapsed := time.Since(start).Seconds()
			for i := range frame {
				h := math.Mod(elapsed/6+float64(i)/float64(len(frame)), 1)
				frame[i] = colorWheel(h)
			}
			hub.Broadcast(frame)
			sink(frame)
		case sig := <-quit:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
			for i := range frame {
				frame[i] = ws2812.RGB{}
			}
			hub.Broadcast(frame)
			sink(frame)
			return
		}
	}
}

// buildSink returns the local output path for a frame plus the closer
// releasing whatever the sink holds (register mapping, spidev handle). The
// "driver" sink runs the real transmission bracket; "nrz" lets an SPI
// peripheral do the clocking, falling back to the console when no SPI port
// exists.
func buildSink(cfg *config.Config, output string) (func([]ws2812.RGB), io.Closer) {
	switch output {
	case "driver":
		port, closer, err := wiring.Resolve(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("resolving port")
		}
		order, _ := cfg.Order()
		dev, err := ws2812.Configure(ws2812.Config{
			Port:      port,
			Order:     order,
			ResetTime: cfg.Reset(),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("configuring device")
		}
		return func(f []ws2812.RGB) {
			dev.Prepare()
			dev.Transmit(f)
			dev.Close()
		}, closer

	case "nrz":
		drawer, closer := initDrawer(cfg)
		im := image.NewNRGBA(image.Rect(0, 0, cfg.Leds, 1))
		return func(f []ws2812.RGB) {
			for x, p := range f {
				im.Pix[x*4+0] = p.R
				im.Pix[x*4+1] = p.G
				im.Pix[x*4+2] = p.B
				im.Pix[x*4+3] = 255
			}
			if err := drawer.Draw(drawer.Bounds(), im, image.Point{}); err != nil {
				log.Error().Err(err).Msg("draw frame")
			}
		}, closer
	}
	return func([]ws2812.RGB) {}, nopCloser{}
}

// initDrawer opens an NRZ LED device on the configured SPI port, printing
// to the console instead when the port is unavailable.
func initDrawer(cfg *config.Config) (display.Drawer, io.Closer) {
	if _, err := host.Init(); err != nil {
		log.Warn().Err(err).Msg("host init failed, rendering to the console")
		return screen.New(cfg.Leds), nopCloser{}
	}
	sp, err := spireg.Open(cfg.SPI.Dev)
	if err != nil {
		log.Warn().Err(err).Msg("no SPI port, rendering to the console")
		return screen.New(cfg.Leds), nopCloser{}
	}
	d, err := nrzled.NewSPI(sp, &nrzled.Opts{
		NumPixels: cfg.Leds,
		Channels:  3,
		Freq:      2500 * physic.KiloHertz,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("opening nrzled device")
	}
	return d, sp
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// colorWheel maps a hue in [0,1) onto the RGB wheel.
func colorWheel(h float64) ws2812.RGB {
	h *= 6
	switch {
	case h < 1.:
		return ws2812.RGB{R: 255, G: uint8(255 * h)}
	case h < 2.:
		return ws2812.RGB{R: uint8(255 * (2 - h)), G: 255}
	case h < 3.:
		return ws2812.RGB{G: 255, B: uint8(255 * (h - 2))}
	case h < 4.:
		return ws2812.RGB{G: uint8(255 * (4 - h)), B: 255}
	case h < 5.:
		return ws2812.RGB{R: uint8(255 * (h - 4)), B: 255}
	default:
		return ws2812.RGB{R: 255, B: uint8(255 * (6 - h))}
	}
}
