// Command blinkloop blinks a whole WS2812 chain white/black without
// allocating a buffer the size of the strip: a single pixel value is
// transmitted once per LED inside one bracket. Memory-lean, but the loop
// must run uninterrupted.
package main

import (
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/tinyws2812/internal/config"
	"github.com/coreman2200/tinyws2812/internal/wiring"
	"github.com/coreman2200/tinyws2812/ws2812"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		leds       = flag.Int("leds", 0, "override the configured LED count")
		interval   = flag.Duration("interval", 500*time.Millisecond, "time between blinks")
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
	if *leds > 0 {
		cfg.Leds = *leds
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad config")
	}

	port, closer, err := wiring.Resolve(&cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("resolving port")
	}
	defer closer.Close()

	order, _ := cfg.Order()
	dev, err := ws2812.Configure(ws2812.Config{
		Port:      port,
		Order:     order,
		ResetTime: cfg.Reset(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configuring device")
	}

	white := []ws2812.RGB{{R: 255, G: 255, B: 255}}
	black := []ws2812.RGB{{}}

	// paint programs every LED with the same value, one pixel at a time.
	paint := func(px []ws2812.RGB) {
		dev.Prepare()
		for i := 0; i < cfg.Leds; i++ {
			dev.Transmit(px)
		}
		dev.Close()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	log.Info().Int("leds", cfg.Leds).Str("driver", cfg.Driver).Msg("blinking")

	on := true
	tick := time.NewTicker(*interval)
	defer tick.Stop()
	for {
		select {
		case <-tick.C:
			if on {
				paint(white)
			} else {
				paint(black)
			}
			on = !on
		case sig := <-quit:
			log.Info().Str("signal", sig.String()).Msg("clearing strip and exiting")
			paint(black)
			return
		}
	}
}
