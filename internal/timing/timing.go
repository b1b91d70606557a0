// Package timing converts baud rates into testbench replay delays.
package timing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidBaudRate = errors.New("timing: invalid baud rate")

const nsPerSecond = 1_000_000_000

// Timing is the replay period of one line bit.
type Timing struct {
	Baud         uint32
	BitNS        uint32
	HalfPeriodNS uint32
}

// BitDelayNS returns round(1e9 / baud).
func BitDelayNS(baud uint32) (uint32, error) {
	if baud == 0 {
		return 0, fmt.Errorf("%w: 0", ErrInvalidBaudRate)
	}
	b := uint64(baud)
	return uint32((nsPerSecond + b/2) / b), nil
}

// HalfPeriodNS truncates delay to half a bit period.
func HalfPeriodNS(delay uint32) uint32 {
	return delay / 2
}

// ForBaud computes the full and half bit periods for baud.
func ForBaud(baud uint32) (Timing, error) {
	delay, err := BitDelayNS(baud)
	if err != nil {
		return Timing{}, err
	}
	return Timing{Baud: baud, BitNS: delay, HalfPeriodNS: HalfPeriodNS(delay)}, nil
}

// ParseBaud reads a base-10 baud rate.
func ParseBaud(raw string) (uint32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBaudRate, raw)
	}
	return CheckBaud(v)
}

// CheckBaud narrows a signed baud rate, rejecting zero, negative and
// out-of-range values.
func CheckBaud(v int64) (uint32, error) {
	if v <= 0 || v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBaudRate, v)
	}
	return uint32(v), nil
}
