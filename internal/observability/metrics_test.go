package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/sersrcgen/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog/log"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	before := testutil.ToFloat64(bits.WithLabelValues("uart"))
	RecordRun("uart", "ok")
	RecordSequence("uart", 2, 20)
	RecordArtifact("mem")

	if got := testutil.ToFloat64(bits.WithLabelValues("uart")) - before; got != 20 {
		t.Fatalf("unexpected bits delta: %v", got)
	}
	log.Info().Msg("observability/metrics: registration idempotent and recording paths executed")
}

func TestWriteTextfile(t *testing.T) {
	testlog.Start(t)
	RecordRun("uart", "ok")
	path := filepath.Join(t.TempDir(), "sersrcgen.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), "sersrcgen_generator_runs_total") {
		t.Fatalf("textfile missing runs counter:\n%s", data)
	}
}
