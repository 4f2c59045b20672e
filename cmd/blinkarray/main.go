// Command blinkarray blinks a WS2812 chain white/black from an RGB buffer
// the size of the strip, the straightforward counterpart to blinkloop.
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

	strip := make([]ws2812.RGB, cfg.Leds)
	fill := func(v uint8) {
		for i := range strip {
			strip[i] = ws2812.RGB{R: v, G: v, B: v}
		}
	}
	show := func() {
		dev.Prepare()
		dev.Transmit(strip)
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
				fill(255)
			} else {
				fill(0)
			}
			show()
			on = !on
		case sig := <-quit:
			log.Info().Str("signal", sig.String()).Msg("clearing strip and exiting")
			fill(0)
			show()
			return
		}
	}
}
