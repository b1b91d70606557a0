package artifact

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/danmuck/sersrcgen/internal/protocol"
	"github.com/danmuck/sersrcgen/internal/timing"
)

// TestbenchParams carries the values the replay fragment is built from.
type TestbenchParams struct {
	Protocol protocol.ID
	Format   string
	BitCount int
	Timing   timing.Timing
	MemFile  string
}

type testbenchView struct {
	Title        string
	Format       string
	Baud         uint32
	BitCount     int
	LastIndex    int
	IdleLevel    string
	BitNS        uint32
	HalfPeriodNS uint32
	PollNS       uint32
	MemFile      string
}

var testbenchTemplate = template.Must(template.New("testbench").Parse(testbenchSource))

// RenderTestbench writes the Verilog fragment that replays the mem file.
func RenderTestbench(w io.Writer, p TestbenchParams) error {
	if p.BitCount <= 0 {
		return ErrEmptySequence
	}
	memFile := p.MemFile
	if memFile == "" {
		memFile = DefaultMemFile
	}
	poll := p.Timing.HalfPeriodNS
	if poll == 0 {
		poll = 1
	}
	view := testbenchView{
		Title:        strings.ToUpper(p.Protocol.String()),
		Format:       p.Format,
		Baud:         p.Timing.Baud,
		BitCount:     p.BitCount,
		LastIndex:    p.BitCount - 1,
		IdleLevel:    fmt.Sprintf("1'b%c", p.Protocol.IdleLevel().Char()),
		BitNS:        p.Timing.BitNS,
		HalfPeriodNS: p.Timing.HalfPeriodNS,
		PollNS:       poll,
		MemFile:      memFile,
	}
	return testbenchTemplate.Execute(w, view)
}

const testbenchSource = `// {{.Title}} Data Serialized
// format {{.Format}}, {{.Baud}} baud, {{.BitCount}} bits

	localparam SERIALIZED_LEN = {{.BitCount}};
	localparam BIT_PERIOD_NS = {{.BitNS}};
	localparam HALF_PERIOD_NS = {{.HalfPeriodNS}};

	integer n;
	reg SERIAL_STREAM;
	reg serialized_values[0:{{.LastIndex}}];

	initial begin
		n = 0;
		SERIAL_STREAM = {{.IdleLevel}};
		$readmemb("{{.MemFile}}", serialized_values);

		forever begin
			if(en) begin
				SERIAL_STREAM <= serialized_values[n];
				if(n < SERIALIZED_LEN - 1) n <= n + 1;
				else n <= 0;
				#{{.BitNS}};	// one bit period at {{.Baud}} baud
			end
			else #{{.PollNS}};
		end
	end
`
