// Package gpiomem bit-bangs the WS2812 protocol on a memory-mapped
// Broadcom GPIO bank, the register layout of every Raspberry Pi up to the
// Pi 4.
//
// The bank is mapped from /dev/gpiomem, so no root is required, only
// membership in the gpio group. All data pins must sit in bank 0 (GPIO 0
// through 31): those share the GPSET0/GPCLR0 output registers, which is
// what lets one register store toggle several chains at once. The bank
// uses write-1-to-set and write-1-to-clear registers, so unrelated pins on
// the bank are never disturbed.
//
// Pulse widths are produced by a spin loop calibrated at Open. That makes
// the timing only as good as the machine is idle; combine it with the
// Prepare/Close bracket (see the ws2812 package) and keep brackets short.
// For setups that cannot tolerate occasional glitches, the spiout backend
// trades a pin for hardware clocking.
package gpiomem
