package matrix7seg

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Bus is the serial transport the controller is wired to.
type Bus interface {
	// Init prepares the peripheral. It is called once, by New.
	Init() error
	// Write clocks p out on the bus.
	Write(p []byte) error
}

// ChipSelect drives the controller's LOAD (CS) line. Data is latched when
// the line is deasserted.
type ChipSelect interface {
	Assert() error
	Deassert() error
}

// SPIBus is a Bus backed by a periph.io SPI port.
type SPIBus struct {
	Port spi.Port

	c spi.Conn
}

// NewSPIBus returns a Bus using p. The port is connected by Init.
func NewSPIBus(p spi.Port) *SPIBus {
	return &SPIBus{Port: p}
}

// Init connects the port at 10MHz, Mode0, 8-bit words. The MAX7219 also
// works in Mode2 and Mode3 but is rated for 10MHz at most.
func (b *SPIBus) Init() error {
	if b.Port == nil {
		return errors.New("matrix7seg: no SPI port")
	}
	c, err := b.Port.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return err
	}
	b.c = c
	return nil
}

func (b *SPIBus) Write(p []byte) error {
	if b.c == nil {
		return errors.New("matrix7seg: SPI bus not initialized")
	}
	return b.c.Tx(p, nil)
}

// PinSelect drives the chip select through a periph.io GPIO. The line is
// active low.
type PinSelect struct {
	Pin gpio.PinOut
}

func (s PinSelect) Assert() error {
	return s.Pin.Out(gpio.Low)
}

func (s PinSelect) Deassert() error {
	return s.Pin.Out(gpio.High)
}

// SelectFunc adapts a function taking the wanted line state to ChipSelect.
// active is true while a frame is being written.
type SelectFunc func(active bool) error

func (f SelectFunc) Assert() error {
	return f(true)
}

func (f SelectFunc) Deassert() error {
	return f(false)
}
