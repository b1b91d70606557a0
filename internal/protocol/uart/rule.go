package uart

import (
	"fmt"
	"strings"
)

const (
	MinDataBits = 5
	MaxDataBits = 9

	bigEndianFlag = 1 << 7
	stop2Flag     = 1 << 6
	parityShift   = 4
	parityMask    = 0x03 << parityShift
	dataBitsMask  = 0x0F
)

// Parity selects the optional parity bit.
type Parity uint8

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

// Char returns the conventional format letter for p.
func (p Parity) Char() byte {
	switch p {
	case ParityOdd:
		return 'O'
	case ParityEven:
		return 'E'
	default:
		return 'N'
	}
}

func (p Parity) String() string {
	switch p {
	case ParityOdd:
		return "odd"
	case ParityEven:
		return "even"
	default:
		return "none"
	}
}

// StopBits is the number of stop bits closing a frame.
type StopBits uint8

const (
	Stop1 StopBits = 1
	Stop2 StopBits = 2
)

// BitOrder selects which end of the data window is transmitted first.
type BitOrder uint8

const (
	LittleEndian BitOrder = iota
	BigEndian
)

// ParseBitOrder accepts lsb/little and msb/big spellings. Empty input is
// LittleEndian.
func ParseBitOrder(raw string) (BitOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "lsb", "little", "little-endian", "le":
		return LittleEndian, nil
	case "msb", "big", "big-endian", "be":
		return BigEndian, nil
	default:
		return LittleEndian, fmt.Errorf("%w: %q", ErrInvalidBitOrder, raw)
	}
}

func (o BitOrder) String() string {
	if o == BigEndian {
		return "msb"
	}
	return "lsb"
}

// Fields is the unpacked view of a Rule.
type Fields struct {
	DataBits int
	Parity   Parity
	StopBits StopBits
	BitOrder BitOrder
}

// Rule is the packed UART format consumed by Serialize.
type Rule uint8

// EncodeFormat packs a "<digit><parity><stop>" format string such as "8N1".
// The digit must be 5-9. Unknown or missing parity characters select no
// parity and anything other than '2' selects one stop bit.
func EncodeFormat(format string) (Rule, error) {
	if format == "" {
		return 0, fmt.Errorf("%w: empty format", ErrInvalidDataWidth)
	}
	digit := format[0]
	if digit < '0'+MinDataBits || digit > '0'+MaxDataBits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDataWidth, format[:1])
	}
	r := Rule(digit-'0') & dataBitsMask

	if len(format) > 1 {
		switch format[1] {
		case 'O':
			r |= Rule(ParityOdd) << parityShift
		case 'E':
			r |= Rule(ParityEven) << parityShift
		}
	}
	if len(format) > 2 && format[2] == '2' {
		r |= stop2Flag
	}
	return r, nil
}

// NewRule packs explicit fields.
func NewRule(f Fields) (Rule, error) {
	if f.DataBits < MinDataBits || f.DataBits > MaxDataBits {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDataWidth, f.DataBits)
	}
	if f.Parity > ParityEven {
		return 0, fmt.Errorf("%w: parity %d", ErrInvalidRule, f.Parity)
	}
	r := Rule(f.DataBits) | Rule(f.Parity)<<parityShift
	switch f.StopBits {
	case Stop1:
	case Stop2:
		r |= stop2Flag
	default:
		return 0, fmt.Errorf("%w: stop bits %d", ErrInvalidRule, f.StopBits)
	}
	return r.WithBitOrder(f.BitOrder), nil
}

// FromByte validates a packed rule received through binary interchange.
func FromByte(b byte) (Rule, error) {
	r := Rule(b)
	if n := r.DataBits(); n < MinDataBits || n > MaxDataBits {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDataWidth, n)
	}
	if (b&parityMask)>>parityShift > byte(ParityEven) {
		return 0, fmt.Errorf("%w: parity field 0x%02X", ErrInvalidRule, b&parityMask)
	}
	return r, nil
}

// Byte returns the packed representation.
func (r Rule) Byte() byte {
	return byte(r)
}

func (r Rule) DataBits() int {
	return int(r & dataBitsMask)
}

func (r Rule) Parity() Parity {
	return Parity((r & parityMask) >> parityShift)
}

func (r Rule) StopBits() StopBits {
	if r&stop2Flag != 0 {
		return Stop2
	}
	return Stop1
}

func (r Rule) BitOrder() BitOrder {
	if r&bigEndianFlag != 0 {
		return BigEndian
	}
	return LittleEndian
}

// Decode unpacks every field of r.
func (r Rule) Decode() Fields {
	return Fields{
		DataBits: r.DataBits(),
		Parity:   r.Parity(),
		StopBits: r.StopBits(),
		BitOrder: r.BitOrder(),
	}
}

// WithBitOrder returns r with its bit order flag replaced.
func (r Rule) WithBitOrder(o BitOrder) Rule {
	if o == BigEndian {
		return r | bigEndianFlag
	}
	return r &^ bigEndianFlag
}

// String renders the canonical format string, e.g. "8N1" or "7E2/msb".
func (r Rule) String() string {
	buf := []byte{
		'0' + byte(r.DataBits()),
		r.Parity().Char(),
		'0' + byte(r.StopBits()),
	}
	if r.BitOrder() == BigEndian {
		buf = append(buf, "/msb"...)
	}
	return string(buf)
}
