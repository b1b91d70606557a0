package protocol

import "strings"

// Bit is one line-level symbol.
type Bit uint8

const (
	Bit0 Bit = 0
	Bit1 Bit = 1
)

// Char returns the ASCII digit for b.
func (b Bit) Char() byte {
	if b == Bit0 {
		return '0'
	}
	return '1'
}

// Sequence is the ordered list of line transitions a testbench replays.
type Sequence []Bit

// Len is the bit count reported to artifact emitters.
func (s Sequence) Len() int {
	return len(s)
}

// Ones counts the asserted bits in s.
func (s Sequence) Ones() int {
	n := 0
	for _, b := range s {
		if b == Bit1 {
			n++
		}
	}
	return n
}

// String renders s as a compact run of '0' and '1' characters.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, bit := range s {
		b.WriteByte(bit.Char())
	}
	return b.String()
}

// ParseSequence is the inverse of Sequence.String. Characters other than
// '0' and '1' are skipped.
func ParseSequence(raw string) Sequence {
	out := make(Sequence, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '0':
			out = append(out, Bit0)
		case '1':
			out = append(out, Bit1)
		}
	}
	return out
}
