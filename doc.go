// Package matrix7seg drives an 8-digit seven-segment LED display through a
// MAX7219 (or MAX7221) controller.
//
// The controller receives 16-bit frames, a register address followed by a
// data byte, latched when the LOAD (CS) line goes back high. This driver
// keeps BCD decoding off and sends raw segment masks taken from the tables
// in the glyph package.
//
// # Digit Positions
//
// Positions run from 1 (rightmost) to 8 (leftmost) and map to the digit
// registers 0x01 to 0x08:
//
//	position:  8  7  6  5  4  3  2  1
//	register: D7 D6 D5 D4 D3 D2 D1 D0
//
// # Hardware Connection
//
// Connect the module to your system via SPI:
//
//	Module Pin → System Pin
//	VCC        → 5V
//	GND        → GND
//	DIN        → SPI Data (MOSI)
//	CLK        → SPI Clock (SCLK)
//	CS/LOAD    → GPIO (any available pin)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//		"github.com/flavioheleno/matrix7seg"
//	)
//
//	func main() {
//		host.Init()
//
//		port, _ := spireg.Open("")
//		defer port.Close()
//
//		dev, _ := matrix7seg.NewSPI(port, gpioreg.ByName("GPIO8"))
//		defer dev.Halt()
//
//		dev.WriteNumber(-1234, matrix7seg.Layout{ZeroPad: true})
//		dev.Show() // shows "-0001234"
//	}
//
// # Layout
//
// WriteNumber and WriteString always fill all eight digits. Values are
// right justified and padded with spaces; ZeroPad pads with '0' instead and
// LeftJustify pads with spaces on the right. LeftJustify wins when both are
// set. Values longer than eight characters are rejected with ErrOverflow
// before anything is written.
//
// # Rotated Digits
//
// A module mounted on its side reads in the opposite direction with each
// digit turned by 90 degrees. Layout.Rotated draws numbers with the
// rotated table and reverses their order. Only digits and space exist in
// that table.
//
// # Missing Glyphs
//
// A character with no glyph in the active table is not an error. The digit
// is marked as missing (see Dev.Digit) and is sent blank by Show.
//
// # Other Platforms
//
// Any transport implementing Bus and any line implementing ChipSelect can be
// used with New. RPIOBus and RPIOSelect use go-rpio on a Raspberry Pi, and
// SelectFunc adapts a plain function.
package matrix7seg
