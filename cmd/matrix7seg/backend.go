package main

import (
	"fmt"

	"github.com/flavioheleno/matrix7seg"
	"github.com/flavioheleno/matrix7seg/glyph"
	log "github.com/sirupsen/logrus"
	"github.com/stianeikeland/go-rpio/v4"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// openDevice connects to the display selected by the config. The returned
// function releases the bus; it does not blank the display.
func openDevice(conf *Config) (*matrix7seg.Dev, func(), error) {
	switch conf.Backend {
	case backendPeriph:
		return openPeriph(conf)
	case backendRPIO:
		return openRPIO(conf)
	}
	dev, err := newDryRun(log.StandardLogger())
	return dev, func() {}, err
}

func openPeriph(conf *Config) (*matrix7seg.Dev, func(), error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("unable to initialize periph: %w", err)
	}

	port, err := spireg.Open(conf.SPI.Bus)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open SPI bus %q: %w", conf.SPI.Bus, err)
	}

	pin := gpioreg.ByName(conf.SPI.ChipSelect)
	if pin == nil {
		port.Close()
		return nil, nil, fmt.Errorf("GPIO pin %s not found", conf.SPI.ChipSelect)
	}

	log.Debugf("Using SPI port %v with chip select %v", port, pin)
	dev, err := matrix7seg.NewSPI(port, pin)
	if err != nil {
		port.Close()
		return nil, nil, err
	}
	return dev, func() { port.Close() }, nil
}

func openRPIO(conf *Config) (*matrix7seg.Dev, func(), error) {
	if err := rpio.Open(); err != nil {
		return nil, nil, fmt.Errorf("unable to open GPIO memory: %w", err)
	}

	bus := &matrix7seg.RPIOBus{Dev: rpio.Spi0, Speed: conf.RPIO.Speed}
	cs := &matrix7seg.RPIOSelect{Pin: rpio.Pin(conf.RPIO.ChipSelectPin)}

	log.Debugf("Using SPI0 at %d Hz with chip select on GPIO%d", conf.RPIO.Speed, conf.RPIO.ChipSelectPin)
	dev, err := matrix7seg.New(bus, cs)
	if err != nil {
		rpio.Close()
		return nil, nil, err
	}
	return dev, func() {
		bus.Close()
		rpio.Close()
	}, nil
}

// dryRunBus logs frames instead of sending them.
type dryRunBus struct {
	log log.FieldLogger
}

func (b dryRunBus) Init() error {
	b.log.Debug("Dry run, nothing is sent to hardware")
	return nil
}

func (b dryRunBus) Write(p []byte) error {
	if len(p) != 2 {
		return fmt.Errorf("unexpected frame of %d bytes", len(p))
	}
	b.log.WithFields(log.Fields{
		"register": matrix7seg.Register(p[0]),
		"data":     fmt.Sprintf("0x%02x", p[1]),
	}).Debug("Frame")
	return nil
}

func newDryRun(logger log.FieldLogger) (*matrix7seg.Dev, error) {
	cs := matrix7seg.SelectFunc(func(active bool) error {
		logger.WithField("active", active).Trace("Chip select")
		return nil
	})
	return matrix7seg.New(dryRunBus{log: logger}, cs)
}

// render reads the buffer back as text, leftmost digit first. Masks that do
// not decode are shown as '?'.
func render(buf [matrix7seg.NumDigits]byte, table *glyph.Table) string {
	out := make([]rune, 0, len(buf))
	for i := len(buf) - 1; i >= 0; i-- {
		r, ok := table.Decode(buf[i])
		if !ok {
			r = '?'
		}
		out = append(out, r)
	}
	return string(out)
}
