// Package config loads and saves the YAML wiring description shared by the
// example commands.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/tinyws2812/ws2812"
)

// SPI names the spidev transport parameters for the spiout driver.
type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0
	SpeedHz int    `yaml:"speed_hz"` // e.g. 2400000
}

// Config describes one wiring setup.
type Config struct {
	Driver     string `yaml:"driver"` // "gpiomem" | "pin" | "spi" | "sim"
	Pins       []int  `yaml:"pins"`   // BCM numbers, all in one GPIO bank
	Leds       int    `yaml:"leds"`
	ColorOrder string `yaml:"color_order"` // e.g. "grb"
	ResetUs    int    `yaml:"reset_us"`    // 0 selects the datasheet default

	Addr string `yaml:"addr,omitempty"` // wsbridge listen address
	FPS  int    `yaml:"fps,omitempty"`

	SPI SPI `yaml:"spi,omitempty"`
}

// Default is the fallback used when no config file is present: one chain of
// 8 LEDs in GRB order on GPIO18.
var Default = Config{
	Driver:     "gpiomem",
	Pins:       []int{18},
	Leds:       8,
	ColorOrder: "grb",
	Addr:       ":8080",
	FPS:        30,
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate catches mistakes that would otherwise only surface once a
// driver rejects them, or not at all.
func (c *Config) Validate() error {
	switch c.Driver {
	case "gpiomem", "pin", "spi", "sim":
	default:
		return fmt.Errorf("config: unknown driver %q", c.Driver)
	}
	if c.Leds <= 0 {
		return fmt.Errorf("config: leds must be positive, got %d", c.Leds)
	}
	if c.ResetUs < 0 {
		return fmt.Errorf("config: reset_us must not be negative, got %d", c.ResetUs)
	}
	if _, err := c.Order(); err != nil {
		return err
	}
	return nil
}

// Order resolves the color_order field; an empty field means GRB, the most
// common batch order.
func (c *Config) Order() (ws2812.ColorOrder, error) {
	if c.ColorOrder == "" {
		return ws2812.GRBOrder, nil
	}
	return ws2812.ParseOrder(c.ColorOrder)
}

// Reset resolves reset_us into a duration, zero meaning the driver default.
func (c *Config) Reset() time.Duration {
	return time.Duration(c.ResetUs) * time.Microsecond
}
