package matrix7seg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
)

var (
	_ Bus        = (*SPIBus)(nil)
	_ Bus        = (*RPIOBus)(nil)
	_ ChipSelect = PinSelect{}
	_ ChipSelect = SelectFunc(nil)
	_ ChipSelect = (*RPIOSelect)(nil)
)

func initOps() []conntest.IO {
	return []conntest.IO{
		{W: []byte{0x0c, 0x00}},
		{W: []byte{0x0f, 0x00}},
		{W: []byte{0x0b, 0x07}},
		{W: []byte{0x09, 0x00}},
		{W: []byte{0x0c, 0x01}},
	}
}

func TestNewSPI(t *testing.T) {
	ops := append(initOps(),
		conntest.IO{W: []byte{0x01, 0x30}},
		conntest.IO{W: []byte{0x02, 0x7e}},
		conntest.IO{W: []byte{0x03, 0x00}},
	)
	port := &spitest.Playback{Playback: conntest.Playback{Ops: ops, DontPanic: true}}
	cs := &gpiotest.Pin{N: "CS", L: gpio.Low}

	dev, err := NewSPI(port, cs)
	require.NoError(t, err)
	assert.Equal(t, gpio.High, cs.L)

	require.NoError(t, dev.WriteNumber(1, Layout{}))
	require.NoError(t, dev.WriteRaw(2, 0x7e))
	require.NoError(t, dev.ShowDigits(3))
	assert.Equal(t, gpio.High, cs.L)

	assert.NoError(t, port.Close())
}

func TestNewSPIWriteMismatch(t *testing.T) {
	ops := []conntest.IO{{W: []byte{0x0f, 0x00}}}
	port := &spitest.Playback{Playback: conntest.Playback{Ops: ops, DontPanic: true}}
	cs := &gpiotest.Pin{N: "CS"}

	dev, err := NewSPI(port, cs)
	assert.Nil(t, dev)
	assert.Error(t, err)
	assert.Equal(t, gpio.High, cs.L)
}

func TestSPIBus(t *testing.T) {
	b := &SPIBus{}
	assert.Error(t, b.Init())

	b = NewSPIBus(&spitest.Playback{Playback: conntest.Playback{
		Ops:       []conntest.IO{{W: []byte{0x0a, 0x05}}},
		DontPanic: true,
	}})
	assert.Error(t, b.Write([]byte{0x0a, 0x05}), "write before Init")
	require.NoError(t, b.Init())
	assert.NoError(t, b.Write([]byte{0x0a, 0x05}))
}

func TestPinSelect(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO8", L: gpio.High}
	s := PinSelect{Pin: pin}

	require.NoError(t, s.Assert())
	assert.Equal(t, gpio.Low, pin.L)
	require.NoError(t, s.Deassert())
	assert.Equal(t, gpio.High, pin.L)
}

func TestSelectFunc(t *testing.T) {
	var states []bool
	s := SelectFunc(func(active bool) error {
		states = append(states, active)
		return nil
	})

	rec := &recorder{}
	dev, err := New(rec, s)
	require.NoError(t, err)
	require.NoError(t, dev.ShowDigits(1))

	// idle, then one assert/release pair per frame
	want := []bool{false}
	for i := 0; i < 6; i++ {
		want = append(want, true, false)
	}
	assert.Equal(t, want, states)
}

func TestSelectFuncError(t *testing.T) {
	boom := errors.New("line stuck")
	s := SelectFunc(func(active bool) error {
		if active {
			return boom
		}
		return nil
	})

	rec := &recorder{}
	_, err := New(rec, s)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, rec.frames)
}
