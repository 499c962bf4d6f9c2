package matrix7seg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/flavioheleno/matrix7seg/glyph"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// NumDigits is the number of digits on the display.
const NumDigits = 8

// ErrOverflow is returned when a value or position does not fit the display.
var ErrOverflow = errors.New("matrix7seg: overflow")

var errHalted = errors.New("matrix7seg: halted")

// Layout controls how WriteNumber and WriteString place a value in the
// 8-digit field.
type Layout struct {
	ZeroPad     bool // Pad with '0' instead of spaces
	LeftJustify bool // Pad on the right; takes precedence over ZeroPad
	Rotated     bool // Use the rotated digit table (WriteNumber only)
}

// Dev is the device handle for the display.
type Dev struct {
	// Communication
	bus Bus
	cs  ChipSelect

	// Digit masks, index 0 is the rightmost digit
	buffer [NumDigits]byte
	// Bit i set when buffer[i] holds a character missing from its table
	absent uint8

	// State
	halted bool
}

// New initializes the bus and the controller and returns the device.
//
// The controller is left in normal operation, all eight digits scanned and
// BCD decoding disabled. The digit registers are not cleared.
func New(bus Bus, cs ChipSelect) (*Dev, error) {
	if err := bus.Init(); err != nil {
		return nil, fmt.Errorf("matrix7seg: failed to initialize bus: %w", err)
	}
	if err := cs.Deassert(); err != nil {
		return nil, fmt.Errorf("matrix7seg: failed to release chip select: %w", err)
	}

	d := &Dev{bus: bus, cs: cs}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewSPI creates a device on a periph.io SPI port, using cs as the LOAD line.
func NewSPI(p spi.Port, cs gpio.PinOut) (*Dev, error) {
	return New(NewSPIBus(p), PinSelect{Pin: cs})
}

// init sends the start-up sequence. Display test and scan limit are set
// while the chip is still shut down so nothing flashes on power up.
func (d *Dev) init() error {
	cmds := []struct {
		r    Register
		data byte
	}{
		{Shutdown, 0},
		{DisplayTest, 0},
		{ScanLimit, NumDigits - 1},
		{DecodeMode, 0},
		{Shutdown, 1},
	}
	for _, c := range cmds {
		if err := d.send(c.r, c.data); err != nil {
			return err
		}
	}
	return nil
}

// send writes one register frame with the chip selected. The line is
// released even when the write fails; the write error is reported.
func (d *Dev) send(r Register, data byte) error {
	if err := d.cs.Assert(); err != nil {
		return fmt.Errorf("matrix7seg: failed to assert chip select: %w", err)
	}
	werr := d.bus.Write([]byte{byte(r), data})
	cerr := d.cs.Deassert()
	if werr != nil {
		return fmt.Errorf("matrix7seg: failed to write %v: %w", r, werr)
	}
	if cerr != nil {
		return fmt.Errorf("matrix7seg: failed to release chip select: %w", cerr)
	}
	return nil
}

// WriteNumber renders value into the buffer, right justified and space
// padded unless l says otherwise.
//
// With l.Rotated the digits are drawn from the rotated table in reverse
// order. The rotated table has no minus sign, so negative numbers leave a
// missing glyph in that slot.
func (d *Dev) WriteNumber(value int, l Layout) error {
	s := strconv.Itoa(value)
	if len(s) > NumDigits {
		return fmt.Errorf("%w: %s too large for display", ErrOverflow, s)
	}

	text := fmt.Sprintf(l.numberFormat(), value)
	table := glyph.Normal
	if l.Rotated {
		text = reverse(text)
		table = glyph.Rotated
	}
	d.fill(text, table)
	return nil
}

// WriteString renders value into the buffer using the Normal table. Lower
// case letters are shown as upper case. l.Rotated is ignored.
func (d *Dev) WriteString(value string, l Layout) error {
	if utf8.RuneCountInString(value) > NumDigits {
		return fmt.Errorf("%w: %q too large for display", ErrOverflow, value)
	}

	d.fill(strings.ToUpper(l.pad(value)), glyph.Normal)
	return nil
}

// WriteRaw sets the segments of one digit directly. position runs from 1
// (rightmost) to 8 (leftmost).
func (d *Dev) WriteRaw(position int, mask byte) error {
	if position < 1 || position > NumDigits {
		return fmt.Errorf("%w: position %d outside display", ErrOverflow, position)
	}
	d.set(position-1, mask, true)
	return nil
}

// Clear blanks every digit and shows the result.
func (d *Dev) Clear() error {
	for pos := 1; pos <= NumDigits; pos++ {
		if err := d.WriteRaw(pos, 0); err != nil {
			return err
		}
	}
	return d.Show()
}

// Show sends all eight digits to the display.
func (d *Dev) Show() error {
	return d.ShowDigits(NumDigits)
}

// ShowDigits sends the n rightmost digits to the display, one register write
// per digit. Digits holding a missing glyph are sent blank.
func (d *Dev) ShowDigits(n int) error {
	if d.halted {
		return errHalted
	}
	if n < 0 || n > NumDigits {
		return fmt.Errorf("%w: cannot show %d digits", ErrOverflow, n)
	}
	for i := 0; i < n; i++ {
		if err := d.send(Digit0+Register(i), d.buffer[i]); err != nil {
			return err
		}
	}
	return nil
}

// Digit returns the mask buffered for position (1 is the rightmost digit).
// ok is false when the position is out of range or the last character
// written there has no glyph.
func (d *Dev) Digit(position int) (mask byte, ok bool) {
	if position < 1 || position > NumDigits {
		return 0, false
	}
	i := position - 1
	return d.buffer[i], d.absent&(1<<uint(i)) == 0
}

// Buffer returns a copy of the buffered masks, index 0 being the rightmost
// digit.
func (d *Dev) Buffer() [NumDigits]byte {
	return d.buffer
}

// Write replaces the whole buffer with raw masks and shows it. masks[0] is
// the rightmost digit; exactly NumDigits bytes are required.
func (d *Dev) Write(masks []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(masks) != NumDigits {
		return 0, errors.New("matrix7seg: invalid buffer size")
	}
	copy(d.buffer[:], masks)
	d.absent = 0
	if err := d.Show(); err != nil {
		return 0, err
	}
	return len(masks), nil
}

// SetIntensity sets the display brightness (0-15).
func (d *Dev) SetIntensity(level byte) error {
	if d.halted {
		return errHalted
	}
	return d.send(Intensity, level&0x0f)
}

// TestDisplay lights every segment at full brightness while on. The digit
// registers are left untouched.
func (d *Dev) TestDisplay(on bool) error {
	if d.halted {
		return errHalted
	}
	var data byte
	if on {
		data = 1
	}
	return d.send(DisplayTest, data)
}

// Halt puts the controller in shutdown mode. The device handle cannot be
// used afterwards.
func (d *Dev) Halt() error {
	d.halted = true
	return d.send(Shutdown, 0)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("matrix7seg.Dev{%d digits}", NumDigits)
}

// fill writes text into the buffer starting at the leftmost digit.
func (d *Dev) fill(text string, table *glyph.Table) {
	i := NumDigits - 1
	for _, r := range text {
		if i < 0 {
			break
		}
		mask, ok := table.Lookup(r)
		d.set(i, mask, ok)
		i--
	}
}

func (d *Dev) set(i int, mask byte, ok bool) {
	d.buffer[i] = mask
	if ok {
		d.absent &^= 1 << uint(i)
	} else {
		d.absent |= 1 << uint(i)
	}
}

func (l Layout) numberFormat() string {
	switch {
	case l.LeftJustify:
		return "%-" + strconv.Itoa(NumDigits) + "d"
	case l.ZeroPad:
		return "%0" + strconv.Itoa(NumDigits) + "d"
	}
	return "%" + strconv.Itoa(NumDigits) + "d"
}

// pad widens s to NumDigits characters. Zero padding of a string inserts
// literal '0' characters.
func (l Layout) pad(s string) string {
	n := NumDigits - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if l.LeftJustify {
		return s + strings.Repeat(" ", n)
	}
	fill := " "
	if l.ZeroPad {
		fill = "0"
	}
	return strings.Repeat(fill, n) + s
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
