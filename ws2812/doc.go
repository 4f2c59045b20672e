// Package ws2812 drives WS2812 addressable LEDs over their single-wire,
// self-clocked serial protocol.
//
// The package is deliberately barebone. It moves bytes onto the wire in the
// order and with the bracket the protocol demands, and nothing else: no
// frame buffers, no color correction, no animation helpers. It is meant as
// a base other layers build on, and it works the same whether one pin
// drives a strip or several pins on the same output register drive strips
// in parallel.
//
// The actual register access and pulse timing live in backend packages
// (gpiomem, pinport, spiout); each resolves a pin set into a Port, the
// opaque register handle a Device is configured with. The ws2812test
// package provides a recording Port for tests.
//
// Usage follows the transmission bracket of the protocol:
//
//	port, err := gpiomem.Open(&gpiomem.Opts{Pins: []int{18}})
//	...
//	dev, err := ws2812.Configure(ws2812.Config{Port: port, Order: ws2812.GRBOrder})
//	...
//	dev.Prepare()
//	dev.Transmit(pixels)
//	dev.Close()
//
// Between Prepare and Close the calling goroutine must not be preempted;
// the bit timing has roughly 150ns of slack and a single context switch
// ruins the frame. Prepare masks as much preemption as the platform
// allows, but it cannot detect a violation; a corrupted frame shows up as
// wrong colors on the strip, not as an error. Keep brackets short.
//
// Consecutive Transmit calls inside one bracket keep programming the chain
// from where the previous call stopped; the chain only restarts at its
// first LED after the line has been low for the reset time (see
// Device.WaitReset and Device.Close).
package ws2812
