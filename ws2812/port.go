package ws2812

// Port is one physical output register with the driven pin mask already
// resolved. Backend packages (gpiomem, pinport, spiout) validate a pin set
// against their register layout, switch the pins to output once, and hand
// back a Port; the device code never inspects the layout again.
type Port interface {
	// WriteByte shifts out one byte, most significant bit first, with no
	// gap between consecutive bytes. Implementations precompute their
	// set/clear masks so the per-bit work is a register store plus a
	// fixed-length wait. Only call it inside a Prepare/Close bracket.
	WriteByte(b byte)

	// MaskPreemption moves the machine into a state where WriteByte can
	// meet its pulse timing (interrupts masked, scheduler held off,
	// whatever the platform offers) and returns a function restoring the
	// previous state. Backends with hardware-clocked output return a
	// no-op restore.
	MaskPreemption() (restore func())
}
