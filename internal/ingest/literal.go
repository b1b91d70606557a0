package ingest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxLimbs caps the number of bytes one invocation may serialize.
const DefaultMaxLimbs = 16

// ParseValue reads one literal. Literals prefixed "x" or "0x" (either case)
// are base 16; anything else is base 10.
func ParseValue(raw string) (uint32, error) {
	lit := strings.TrimSpace(raw)
	base := 10
	switch {
	case len(lit) > 0 && (lit[0] == 'x' || lit[0] == 'X'):
		lit, base = lit[1:], 16
	case len(lit) > 1 && (lit[1] == 'x' || lit[1] == 'X'):
		if lit[0] != '0' {
			return 0, fmt.Errorf("bad hex prefix %q", lit[:2])
		}
		lit, base = lit[2:], 16
	}
	if lit == "" {
		return 0, errors.New("empty literal")
	}
	v, err := strconv.ParseUint(lit, base, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, errors.New("exceeds 32 bits")
		}
		return 0, fmt.Errorf("not a base-%d number", base)
	}
	return uint32(v), nil
}

// LimbCount is the number of 8-bit limbs v needs: one, plus one for each of
// the 0xFF, 0xFFFF and 0xFFFFFF thresholds it exceeds.
func LimbCount(v uint32) int {
	n := 1
	if v > 0x000000FF {
		n++
	}
	if v > 0x0000FFFF {
		n++
	}
	if v > 0x00FFFFFF {
		n++
	}
	return n
}

// AppendLimbs appends the low n limbs of v to dst, least significant first.
func AppendLimbs(dst []byte, v uint32, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, byte((v>>(8*uint(i)))&0xFF))
	}
	return dst
}

// ParseLiterals converts inline literals into a buffer whose values each take
// the fewest limbs that hold them. The limb total is checked against
// maxLimbs before the buffer is allocated.
func ParseLiterals(args []string, maxLimbs int) ([]byte, error) {
	if maxLimbs <= 0 {
		maxLimbs = DefaultMaxLimbs
	}
	values := make([]uint32, 0, len(args))
	total := 0
	for i, raw := range args {
		v, err := ParseValue(raw)
		if err != nil {
			return nil, &LiteralError{Source: "inline", Index: i, Literal: raw, Reason: err.Error()}
		}
		total += LimbCount(v)
		if total > maxLimbs {
			return nil, fmt.Errorf("%w: more than %d bytes at inline value %d", ErrTooMuchData, maxLimbs, i)
		}
		values = append(values, v)
	}

	buf := make([]byte, 0, total)
	for _, v := range values {
		buf = AppendLimbs(buf, v, LimbCount(v))
	}
	return buf, nil
}
