package ws2812

// RGB holds the red, green and blue value of a single LED.
//
// The struct order is always R, G, B regardless of what the LED batch
// expects on the wire; the reordering happens during transmission based on
// the device's ColorOrder.
type RGB struct {
	R, G, B uint8
}
