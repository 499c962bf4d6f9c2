package matrix7seg

import (
	"github.com/stianeikeland/go-rpio/v4"
)

// RPIOBus is a Bus on the Raspberry Pi SPI controller, accessed through
// go-rpio. rpio.Open must have been called before Init.
type RPIOBus struct {
	Dev   rpio.SpiDev
	Speed int // Hz, 10MHz when zero
}

func (b *RPIOBus) Init() error {
	if err := rpio.SpiBegin(b.Dev); err != nil {
		return err
	}
	speed := b.Speed
	if speed <= 0 {
		speed = 10000000
	}
	rpio.SpiSpeed(speed)
	rpio.SpiMode(0, 0)
	return nil
}

func (b *RPIOBus) Write(p []byte) error {
	rpio.SpiTransmit(p...)
	return nil
}

// Close releases the SPI pins back to GPIO mode.
func (b *RPIOBus) Close() {
	rpio.SpiEnd(b.Dev)
}

// RPIOSelect drives the chip select through a go-rpio pin, which only knows
// High and Low. The pin is switched to output mode on first use.
type RPIOSelect struct {
	Pin rpio.Pin

	ready bool
}

func (s *RPIOSelect) Assert() error {
	s.output()
	s.Pin.Low()
	return nil
}

func (s *RPIOSelect) Deassert() error {
	s.output()
	s.Pin.High()
	return nil
}

func (s *RPIOSelect) output() {
	if !s.ready {
		s.Pin.Output()
		s.ready = true
	}
}
