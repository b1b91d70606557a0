package protocol

import (
	"errors"
	"testing"
)

func TestParseSelectors(t *testing.T) {
	cases := []struct {
		in   string
		want ID
	}{
		{"u", UART},
		{"uart", UART},
		{" UART ", UART},
		{"s", SPI},
		{"spi", SPI},
		{"i2c", I2C},
		{"can", CAN},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: got %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseInvalidSelector(t *testing.T) {
	for _, in := range []string{"", "  ", "x", "rs232"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidProtocol) {
			t.Fatalf("expected ErrInvalidProtocol for %q, got %v", in, err)
		}
	}
}

func TestOnlyUARTImplemented(t *testing.T) {
	if !UART.Implemented() {
		t.Fatalf("expected uart implemented")
	}
	for _, id := range []ID{SPI, I2C, CAN} {
		if id.Implemented() {
			t.Fatalf("expected %v unimplemented", id)
		}
		if !id.Known() {
			t.Fatalf("expected %v known", id)
		}
	}
}

func TestIdleLevel(t *testing.T) {
	if UART.IdleLevel() != Bit1 {
		t.Fatalf("uart must idle high")
	}
	if SPI.IdleLevel() != Bit0 {
		t.Fatalf("spi must idle low")
	}
}

func TestSequenceStringRoundTrip(t *testing.T) {
	seq := Sequence{Bit0, Bit1, Bit1, Bit0, Bit1}
	if seq.String() != "01101" {
		t.Fatalf("unexpected string: %q", seq.String())
	}
	if seq.Ones() != 3 {
		t.Fatalf("unexpected ones: %d", seq.Ones())
	}
	back := ParseSequence("0 1 1\n0 1")
	if back.String() != seq.String() {
		t.Fatalf("parse mismatch: %q", back.String())
	}
}
