package ws2812_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/coreman2200/tinyws2812/ws2812"
	"github.com/coreman2200/tinyws2812/ws2812/ws2812test"
)

func newTestPort(t *testing.T) *ws2812test.Port {
	t.Helper()
	port, err := ws2812test.New(0, 0)
	require.NoError(t, err)
	return port
}

func configure(t *testing.T, cfg Config) *Device {
	t.Helper()
	d, err := Configure(cfg)
	require.NoError(t, err)
	return d
}

func TestConfigureNoPort(t *testing.T) {
	d, err := Configure(Config{Order: GRBOrder})
	assert.Nil(t, d)
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestConfigureNegativeReset(t *testing.T) {
	port := newTestPort(t)
	d, err := Configure(Config{Port: port, ResetTime: -1})
	assert.Nil(t, d)
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestConfigureDefaultReset(t *testing.T) {
	d := configure(t, Config{Port: newTestPort(t)})
	assert.Equal(t, DefaultResetTime, d.ResetTime())
}

func TestResolverEmptyPinSet(t *testing.T) {
	port, err := ws2812test.New(0)
	assert.Nil(t, port)
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestResolverForeignRegisterPin(t *testing.T) {
	port, err := ws2812test.New(0, 1, 9)
	assert.Nil(t, port)
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
}

var TestOrderTransmitsBytes = []struct {
	Order  ColorOrder
	Pixel  RGB
	Expect []byte
}{
	{RGBOrder, RGB{10, 20, 30}, []byte{10, 20, 30}},
	{GRBOrder, RGB{10, 20, 30}, []byte{20, 10, 30}},
	{BGROrder, RGB{10, 20, 30}, []byte{30, 20, 10}},
	{RBGOrder, RGB{10, 20, 30}, []byte{10, 30, 20}},
	{BRGOrder, RGB{10, 20, 30}, []byte{30, 10, 20}},
	{GBROrder, RGB{10, 20, 30}, []byte{20, 30, 10}},
}

func TestTransmitColorOrder(t *testing.T) {
	for _, v := range TestOrderTransmitsBytes {
		t.Run(v.Order.String(), func(t *testing.T) {
			port := newTestPort(t)
			d := configure(t, Config{Port: port, Order: v.Order})

			d.Prepare()
			d.Transmit([]RGB{v.Pixel})
			d.Close()

			assert.Equal(t, v.Expect, port.Bytes)
		})
	}
}

// A byte goes out as exactly 8 bit encodings, most significant bit first.
func TestByteIsMSBFirst(t *testing.T) {
	port := newTestPort(t)
	d := configure(t, Config{Port: port, Order: RGBOrder})

	d.Prepare()
	d.Transmit([]RGB{{R: 0b10110000}})
	d.Close()

	want := []bool{true, false, true, true, false, false, false, false}
	assert.Equal(t, want, port.Bits[:8])
	assert.Len(t, port.Bits, 24)
}

// Bits on the register that belong to unrelated peripherals must keep their
// level through a whole transmission. Pin 0 is driven; bits 6 and 7 are
// someone else's.
func TestSharedRegisterBitsPreserved(t *testing.T) {
	port, err := ws2812test.New(0b1100_0000, 0)
	require.NoError(t, err)
	d := configure(t, Config{Port: port, Order: GRBOrder})

	d.Prepare()
	d.Transmit([]RGB{{255, 255, 255}, {0, 0, 0}})
	d.Close()

	for _, w := range port.Writes {
		assert.Equal(t, uint8(0b1100_0000), w&0b1100_0000)
	}
	assert.Equal(t, uint8(0b1100_0000), port.Reg&0b1100_0000)
}

// Driving two pins on one register toggles both with every store.
func TestParallelPinsShareWrites(t *testing.T) {
	port, err := ws2812test.New(0, 0, 1)
	require.NoError(t, err)
	d := configure(t, Config{Port: port, Order: GRBOrder})

	d.Prepare()
	d.Transmit([]RGB{{255, 255, 255}})
	d.Close()

	// Every rising store raises both pins at once.
	assert.Equal(t, uint8(0b11), port.Writes[0])
}

func TestTransmitEmptySlice(t *testing.T) {
	port := newTestPort(t)
	d := configure(t, Config{Port: port, Order: GRBOrder})

	d.Prepare()
	d.Transmit(nil)
	d.Transmit([]RGB{})
	d.Close()

	assert.Empty(t, port.Bytes)
}
