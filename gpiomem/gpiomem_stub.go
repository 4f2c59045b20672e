//go:build !linux

package gpiomem

import "errors"

// Open validates the pin set but always fails: /dev/gpiomem only exists on
// Linux. Use the pinport or spiout backend elsewhere.
func Open(opts *Opts) (*Port, error) {
	if _, err := pinMask(opts.Pins); err != nil {
		return nil, err
	}
	return nil, errors.New("gpiomem: not supported on this platform")
}

func (p *Port) Close() error {
	return nil
}
