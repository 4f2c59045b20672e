package ws2812_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/coreman2200/tinyws2812/ws2812"
)

var TestOrderParsesToExpected = []struct {
	Name   string
	Expect ColorOrder
}{
	{"rgb", RGBOrder},
	{"rbg", RBGOrder},
	{"brg", BRGOrder},
	{"bgr", BGROrder},
	{"grb", GRBOrder},
	{"gbr", GBROrder},
	{"GRB", GRBOrder},
	{"Bgr", BGROrder},
}

func TestParseOrder(t *testing.T) {
	for _, v := range TestOrderParsesToExpected {
		t.Run("Given "+v.Name, func(t *testing.T) {
			o, err := ParseOrder(v.Name)
			assert.NoError(t, err)
			assert.Equal(t, v.Expect, o)
		})
	}
}

func TestParseOrderUnknown(t *testing.T) {
	_, err := ParseOrder("rgbw")
	assert.Error(t, err)
	_, err = ParseOrder("")
	assert.Error(t, err)
}

func TestOrderString(t *testing.T) {
	for _, v := range TestOrderParsesToExpected[:6] {
		assert.Equal(t, v.Name, v.Expect.String())
	}
}

// Every supported order must transmit each channel exactly once. The wire
// permutation is observed through a device rather than read directly, so
// this covers the resolution path too.
func TestOrdersArePermutations(t *testing.T) {
	orders := []ColorOrder{RGBOrder, RBGOrder, BRGOrder, BGROrder, GRBOrder, GBROrder}
	for _, o := range orders {
		t.Run(o.String(), func(t *testing.T) {
			port := newTestPort(t)
			d := configure(t, Config{Port: port, Order: o})

			d.Prepare()
			d.Transmit([]RGB{{R: 10, G: 20, B: 30}})
			d.Close()

			assert.Len(t, port.Bytes, 3)
			assert.ElementsMatch(t, []byte{10, 20, 30}, port.Bytes)
		})
	}
}
