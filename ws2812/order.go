package ws2812

import (
	"fmt"
	"strings"
)

// ColorOrder tells the driver in which sequence an LED batch expects its
// channel bytes. There is no standard: many WS2812 chips want GRB, others
// RGB, and the order cannot be probed at runtime, so it has to come from
// the configuration.
type ColorOrder uint8

const (
	RGBOrder ColorOrder = iota
	RBGOrder
	BRGOrder
	BGROrder
	GRBOrder
	GBROrder
)

// rgbMaps[o][i] is the RGB channel index transmitted at wire position i.
var rgbMaps = [...][3]uint8{
	RGBOrder: {0, 1, 2},
	RBGOrder: {0, 2, 1},
	BRGOrder: {2, 0, 1},
	BGROrder: {2, 1, 0},
	GRBOrder: {1, 0, 2},
	GBROrder: {1, 2, 0},
}

// rgbMap resolves the wire permutation for an order. Values out of range
// fall back to the identity map; RGB is the "no reordering" case.
func rgbMap(o ColorOrder) [3]uint8 {
	if int(o) >= len(rgbMaps) {
		return rgbMaps[RGBOrder]
	}
	return rgbMaps[o]
}

// ParseOrder maps config file spellings like "grb" or "GRB" to a
// ColorOrder. Unlike rgbMap it is strict: a typo in a config file should
// fail loudly, not silently select RGB.
func ParseOrder(s string) (ColorOrder, error) {
	switch strings.ToLower(s) {
	case "rgb":
		return RGBOrder, nil
	case "rbg":
		return RBGOrder, nil
	case "brg":
		return BRGOrder, nil
	case "bgr":
		return BGROrder, nil
	case "grb":
		return GRBOrder, nil
	case "gbr":
		return GBROrder, nil
	}
	return RGBOrder, fmt.Errorf("ws2812: unknown color order %q", s)
}

func (o ColorOrder) String() string {
	switch o {
	case RGBOrder:
		return "rgb"
	case RBGOrder:
		return "rbg"
	case BRGOrder:
		return "brg"
	case BGROrder:
		return "bgr"
	case GRBOrder:
		return "grb"
	case GBROrder:
		return "gbr"
	}
	return fmt.Sprintf("ColorOrder(%d)", uint8(o))
}
