package generator

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/danmuck/sersrcgen/internal/artifact"
	"github.com/danmuck/sersrcgen/internal/config"
	"github.com/danmuck/sersrcgen/internal/ingest"
	"github.com/danmuck/sersrcgen/internal/observability"
	"github.com/danmuck/sersrcgen/internal/protocol"
	"github.com/danmuck/sersrcgen/internal/timing"
	"github.com/rs/zerolog/log"
)

const (
	statusOK      = "ok"
	statusSkipped = "skipped"
	statusError   = "error"
)

// Result summarizes one run.
type Result struct {
	Protocol      protocol.ID
	Format        string
	Frames        int
	BitCount      int
	Timing        timing.Timing
	MemPath       string
	TestbenchPath string
	Skipped       bool
}

// Run validates job, serializes its data and commits the artifacts. On any
// error no artifact is left behind.
func Run(ctx context.Context, job config.Job) (res Result, err error) {
	protoLabel := "unknown"
	defer func() {
		status := statusOK
		switch {
		case err != nil:
			status = statusError
		case res.Skipped:
			status = statusSkipped
		}
		observability.RecordRun(protoLabel, status)
		exportMetrics(job.MetricsFile)
	}()

	plan, err := job.Validate()
	if err != nil {
		return Result{}, err
	}
	protoLabel = plan.Protocol.String()
	log.Debug().
		Str("protocol", protoLabel).
		Str("format", plan.Spec.Format).
		Stringer("source", plan.Source).
		Msg("generator: job validated")

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	data, err := loadData(plan)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	seq := plan.Framer.Frame(data, plan.Spec)
	tm, err := timing.ForBaud(plan.Baud)
	if err != nil {
		return Result{}, err
	}
	res = Result{
		Protocol: plan.Protocol,
		Format:   plan.Framer.Describe(plan.Spec),
		Frames:   len(data),
		BitCount: seq.Len(),
		Timing:   tm,
	}
	observability.RecordSequence(protoLabel, res.Frames, res.BitCount)

	if res.BitCount == 0 {
		log.Warn().Msg("generator: no data to serialize, skipping artifacts")
		res.Skipped = true
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	paths, err := writeArtifacts(plan, seq, res)
	if err != nil {
		return Result{}, err
	}
	res.MemPath = paths[0]
	if len(paths) > 1 {
		res.TestbenchPath = paths[1]
	}
	log.Info().
		Str("protocol", protoLabel).
		Str("format", res.Format).
		Int("frames", res.Frames).
		Int("bits", res.BitCount).
		Uint32("bit_ns", tm.BitNS).
		Msg("generator: artifacts written")
	return res, nil
}

func loadData(plan config.Plan) ([]byte, error) {
	job := plan.Job
	switch plan.Source {
	case config.SourceFile:
		return ingest.ReadFile(job.DataFile, job.DataWidth, job.MaxDataCount)
	default:
		return ingest.ParseLiterals(job.InlineData, job.MaxDataCount)
	}
}

func writeArtifacts(plan config.Plan, seq protocol.Sequence, res Result) ([]string, error) {
	job := plan.Job
	batch := artifact.NewBatch(job.Overwrite)

	err := batch.Stage(job.MemPath(), func(w io.Writer) error {
		return artifact.WriteMem(w, seq)
	})
	if err != nil {
		batch.Abort()
		return nil, err
	}

	if job.GenerateTestbench {
		params := artifact.TestbenchParams{
			Protocol: plan.Protocol,
			Format:   res.Format,
			BitCount: res.BitCount,
			Timing:   res.Timing,
			MemFile:  filepath.Base(job.MemFile),
		}
		err := batch.Stage(job.TestbenchPath(), func(w io.Writer) error {
			return artifact.RenderTestbench(w, params)
		})
		if err != nil {
			batch.Abort()
			return nil, err
		}
	}

	paths, err := batch.Commit()
	if err != nil {
		return nil, err
	}
	observability.RecordArtifact("mem")
	if job.GenerateTestbench {
		observability.RecordArtifact("testbench")
	}
	return paths, nil
}

func exportMetrics(path string) {
	if path == "" {
		return
	}
	if err := observability.WriteTextfile(path); err != nil {
		log.Warn().Err(fmt.Errorf("generator: export metrics: %w", err)).Msg("metrics textfile not written")
	}
}
