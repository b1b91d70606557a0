package config

import (
	"fmt"
	"strings"

	"github.com/danmuck/sersrcgen/internal/framer"
	"github.com/danmuck/sersrcgen/internal/protocol"
	"github.com/danmuck/sersrcgen/internal/protocol/uart"
	"github.com/danmuck/sersrcgen/internal/timing"
)

// Source identifies where a job's data buffer comes from.
type Source int

const (
	SourceInline Source = iota
	SourceFile
)

func (s Source) String() string {
	if s == SourceFile {
		return "file"
	}
	return "inline"
}

// Plan is a validated Job: everything the generator needs, resolved.
type Plan struct {
	Job      Job
	Protocol protocol.ID
	Framer   framer.Framer
	Spec     framer.Spec
	Baud     uint32
	Source   Source
}

// Validate resolves j against the default framer registry.
func (j Job) Validate() (Plan, error) {
	return j.ValidateWith(framer.Default())
}

// ValidateWith resolves j against reg. It touches no files.
func (j Job) ValidateWith(reg *framer.Registry) (Plan, error) {
	id, err := protocol.Parse(j.Protocol)
	if err != nil {
		return Plan{}, err
	}
	f, err := reg.Lookup(id)
	if err != nil {
		return Plan{}, err
	}

	order, err := uart.ParseBitOrder(j.BitOrder)
	if err != nil {
		return Plan{}, err
	}
	if j.Pause < 0 {
		return Plan{}, fmt.Errorf("%w: %d", ErrInvalidPause, j.Pause)
	}
	spec := framer.Spec{Format: strings.TrimSpace(j.Format), BitOrder: order, Pause: j.Pause}
	if err := f.Validate(spec); err != nil {
		return Plan{}, err
	}

	baud, err := timing.CheckBaud(j.Baud)
	if err != nil {
		return Plan{}, err
	}

	src, err := j.source()
	if err != nil {
		return Plan{}, err
	}

	if strings.TrimSpace(j.MemFile) == "" {
		return Plan{}, fmt.Errorf("config: mem file name is required")
	}
	if j.GenerateTestbench && strings.TrimSpace(j.TestbenchFile) == "" {
		return Plan{}, fmt.Errorf("config: testbench file name is required")
	}

	return Plan{
		Job:      j,
		Protocol: id,
		Framer:   f,
		Spec:     spec,
		Baud:     baud,
		Source:   src,
	}, nil
}

func (j Job) source() (Source, error) {
	hasInline := len(j.InlineData) > 0
	hasFile := strings.TrimSpace(j.DataFile) != ""
	switch {
	case hasInline && hasFile:
		return 0, ErrDataSourceConflict
	case hasFile:
		return SourceFile, nil
	case hasInline:
		return SourceInline, nil
	default:
		return 0, ErrNoDataSource
	}
}
