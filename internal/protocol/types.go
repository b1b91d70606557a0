package protocol

import (
	"fmt"
	"strings"
)

// ID is the single-character protocol selector used on the command line.
type ID byte

const (
	UART ID = 'u'
	SPI  ID = 's'
	I2C  ID = 'i'
	CAN  ID = 'c'
)

// Parse resolves a protocol selector. Only the first character is
// significant, so "u", "uart" and "UART" all select UART.
func Parse(raw string) (ID, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return 0, fmt.Errorf("%w: empty selector", ErrInvalidProtocol)
	}
	id := ID(raw[0])
	if !id.Known() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidProtocol, raw)
	}
	return id, nil
}

// Known reports whether id is one of the reserved protocol selectors.
func (id ID) Known() bool {
	switch id {
	case UART, SPI, I2C, CAN:
		return true
	default:
		return false
	}
}

// Implemented reports whether a framer exists for id.
func (id ID) Implemented() bool {
	return id == UART
}

// IdleLevel is the line level a replay testbench drives before the first bit.
// UART lines idle high and assert low on start.
func (id ID) IdleLevel() Bit {
	if id == UART {
		return Bit1
	}
	return Bit0
}

func (id ID) String() string {
	switch id {
	case UART:
		return "uart"
	case SPI:
		return "spi"
	case I2C:
		return "i2c"
	case CAN:
		return "can"
	default:
		return fmt.Sprintf("unknown(%q)", byte(id))
	}
}
