package matrix7seg

import "fmt"

// Register is a MAX7219 register address. Every write on the bus is one
// register followed by one data byte.
type Register byte

const (
	NoOp Register = 0x00

	// Digit registers, Digit0 being the rightmost digit.
	Digit0 Register = 0x01
	Digit1 Register = 0x02
	Digit2 Register = 0x03
	Digit3 Register = 0x04
	Digit4 Register = 0x05
	Digit5 Register = 0x06
	Digit6 Register = 0x07
	Digit7 Register = 0x08

	DecodeMode  Register = 0x09
	Intensity   Register = 0x0a
	ScanLimit   Register = 0x0b
	Shutdown    Register = 0x0c
	DisplayTest Register = 0x0f
)

func (r Register) String() string {
	switch r {
	case NoOp:
		return "noop"
	case DecodeMode:
		return "decode-mode"
	case Intensity:
		return "intensity"
	case ScanLimit:
		return "scan-limit"
	case Shutdown:
		return "shutdown"
	case DisplayTest:
		return "display-test"
	}
	if r >= Digit0 && r <= Digit7 {
		return fmt.Sprintf("digit%d", r-Digit0)
	}
	return fmt.Sprintf("Register(0x%02x)", byte(r))
}
