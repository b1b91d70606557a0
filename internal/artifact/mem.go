package artifact

import (
	"bufio"
	"io"

	"github.com/danmuck/sersrcgen/internal/protocol"
)

// Default artifact names expected by the generated testbench.
const (
	DefaultMemFile       = "serialized_data.mem"
	DefaultTestbenchFile = "testbench_boilerplate.v"
)

// WriteMem writes one '0' or '1' per line in emission order. Every line,
// the last included, ends with '\n'.
func WriteMem(w io.Writer, seq protocol.Sequence) error {
	bw := bufio.NewWriter(w)
	for _, bit := range seq {
		if err := bw.WriteByte(bit.Char()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
