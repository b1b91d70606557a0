package framer

import (
	"fmt"

	"github.com/danmuck/sersrcgen/internal/protocol"
	"github.com/danmuck/sersrcgen/internal/protocol/uart"
)

// Spec is the protocol-agnostic framing request.
type Spec struct {
	Format   string
	BitOrder uart.BitOrder
	Pause    int
}

// Framer turns a byte buffer into line-level bits for one protocol.
// Validate must succeed before Frame is called; Frame is then total.
type Framer interface {
	Protocol() protocol.ID
	Describe(spec Spec) string
	Validate(spec Spec) error
	Frame(data []byte, spec Spec) protocol.Sequence
}

// UART frames bytes with uart.Serialize.
type UART struct{}

func (UART) Protocol() protocol.ID {
	return protocol.UART
}

func (UART) Validate(spec Spec) error {
	_, err := UART{}.rule(spec)
	return err
}

func (UART) Describe(spec Spec) string {
	rule, err := UART{}.rule(spec)
	if err != nil {
		return spec.Format
	}
	return rule.String()
}

func (UART) Frame(data []byte, spec Spec) protocol.Sequence {
	rule, err := UART{}.rule(spec)
	if err != nil {
		return nil
	}
	return uart.Serialize(data, rule, spec.Pause)
}

func (UART) rule(spec Spec) (uart.Rule, error) {
	rule, err := uart.EncodeFormat(spec.Format)
	if err != nil {
		return 0, err
	}
	return rule.WithBitOrder(spec.BitOrder), nil
}

// Reserved stands in for a recognized protocol that has no framer yet.
type Reserved struct {
	ID protocol.ID
}

func (r Reserved) Protocol() protocol.ID {
	return r.ID
}

func (r Reserved) Validate(Spec) error {
	return fmt.Errorf("%w: %s", protocol.ErrUnsupportedProtocol, r.ID)
}

func (r Reserved) Describe(spec Spec) string {
	return spec.Format
}

func (r Reserved) Frame([]byte, Spec) protocol.Sequence {
	return nil
}
