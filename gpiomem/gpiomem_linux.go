//go:build linux

package gpiomem

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

const (
	devGpiomem = "/dev/gpiomem"
	bankLen    = 4096
)

// Open maps the GPIO bank, validates the pin set and switches every pin to
// output. The mode switch happens here, once; transmission never touches
// the function-select registers again.
func Open(opts *Opts) (*Port, error) {
	mask, err := pinMask(opts.Pins)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(devGpiomem, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("gpiomem: open %s: %w", devGpiomem, err)
	}
	defer f.Close()

	raw, err := unix.Mmap(int(f.Fd()), 0, bankLen,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("gpiomem: mmap %s: %w", devGpiomem, err)
	}

	p := &Port{
		mem:  unsafe.Slice((*uint32)(unsafe.Pointer(&raw[0])), bankLen/4),
		raw:  raw,
		mask: mask,
	}

	for _, pin := range opts.Pins {
		fsel := regFsel0 + pin/10
		shift := uint(pin%10) * 3
		v := p.mem[fsel]
		v &^= 7 << shift
		v |= 1 << shift // output mode
		p.mem[fsel] = v
	}
	// Idle low so the first bit starts from a defined level.
	p.mem[regClr0] = mask

	p.tm = calibrate()
	log.Debug().
		Uint32("one_high", p.tm.oneHigh).
		Uint32("zero_high", p.tm.zeroHigh).
		Msg("gpiomem: spin loop calibrated")

	return p, nil
}

// Close releases the register mapping. The port must not be used afterward.
func (p *Port) Close() error {
	raw := p.raw
	p.raw, p.mem = nil, nil
	if raw == nil {
		return nil
	}
	return unix.Munmap(raw)
}
