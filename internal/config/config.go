package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/sersrcgen/internal/artifact"
	"github.com/danmuck/sersrcgen/internal/ingest"
)

var (
	ErrDataSourceConflict = errors.New("config: inline data and data file are mutually exclusive")
	ErrNoDataSource       = errors.New("config: no data source")
	ErrInvalidPause       = errors.New("config: invalid pause")
)

// Job is one generation request. Every field is named and typed; the
// command line and TOML files both resolve into it.
type Job struct {
	Protocol          string
	Format            string
	BitOrder          string
	InlineData        []string
	DataFile          string
	DataWidth         int
	MaxDataCount      int
	Baud              int64
	Pause             int
	GenerateTestbench bool
	OutputDir         string
	MemFile           string
	TestbenchFile     string
	Overwrite         bool
	MetricsFile       string
}

// DefaultJob returns the defaults a bare invocation runs with.
func DefaultJob() Job {
	return Job{
		Protocol:      "u",
		Format:        "8N1",
		BitOrder:      "lsb",
		DataWidth:     8,
		MaxDataCount:  ingest.DefaultMaxLimbs,
		Baud:          9600,
		OutputDir:     ".",
		MemFile:       artifact.DefaultMemFile,
		TestbenchFile: artifact.DefaultTestbenchFile,
	}
}

// MemPath is the mem file target inside OutputDir.
func (j Job) MemPath() string {
	return filepath.Join(j.OutputDir, j.MemFile)
}

// TestbenchPath is the testbench target inside OutputDir.
func (j Job) TestbenchPath() string {
	return filepath.Join(j.OutputDir, j.TestbenchFile)
}

// sersrcgen.toml key mapping to Job fields.
type fileConfig struct {
	Protocol      string `toml:"protocol"`
	Format        string `toml:"format"`
	BitOrder      string `toml:"bit_order"`
	Data          []any  `toml:"data"`
	DataFile      string `toml:"data_file"`
	DataWidth     int    `toml:"data_width"`
	MaxDataCount  int    `toml:"max_data_count"`
	Baud          int64  `toml:"baud"`
	Pause         int    `toml:"pause"`
	Testbench     bool   `toml:"testbench"`
	OutputDir     string `toml:"output_dir"`
	MemFile       string `toml:"mem_file"`
	TestbenchFile string `toml:"testbench_file"`
	Overwrite     bool   `toml:"overwrite"`
	MetricsFile   string `toml:"metrics_file"`
}

// LoadJob overlays a TOML file onto DefaultJob. Relative paths inside the
// file resolve against the file's directory.
func LoadJob(path string) (Job, error) {
	job := DefaultJob()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Job{}, fmt.Errorf("load job config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Job{}, fmt.Errorf("load job config: unknown key %q", undecoded[0].String())
	}
	base := filepath.Dir(path)

	if meta.IsDefined("protocol") {
		job.Protocol = strings.TrimSpace(raw.Protocol)
	}
	if meta.IsDefined("format") {
		job.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("bit_order") {
		job.BitOrder = strings.TrimSpace(raw.BitOrder)
	}
	if meta.IsDefined("data") {
		data, err := normalizeData(raw.Data)
		if err != nil {
			return Job{}, fmt.Errorf("load job config: %w", err)
		}
		job.InlineData = data
	}
	if meta.IsDefined("data_file") {
		job.DataFile = resolvePath(base, raw.DataFile)
	}
	if meta.IsDefined("data_width") {
		job.DataWidth = raw.DataWidth
	}
	if meta.IsDefined("max_data_count") {
		job.MaxDataCount = raw.MaxDataCount
	}
	if meta.IsDefined("baud") {
		job.Baud = raw.Baud
	}
	if meta.IsDefined("pause") {
		job.Pause = raw.Pause
	}
	if meta.IsDefined("testbench") {
		job.GenerateTestbench = raw.Testbench
	}
	if meta.IsDefined("output_dir") {
		job.OutputDir = resolvePath(base, raw.OutputDir)
	}
	if meta.IsDefined("mem_file") {
		job.MemFile = strings.TrimSpace(raw.MemFile)
	}
	if meta.IsDefined("testbench_file") {
		job.TestbenchFile = strings.TrimSpace(raw.TestbenchFile)
	}
	if meta.IsDefined("overwrite") {
		job.Overwrite = raw.Overwrite
	}
	if meta.IsDefined("metrics_file") {
		job.MetricsFile = resolvePath(base, raw.MetricsFile)
	}
	return job, nil
}

func resolvePath(base, raw string) string {
	p := strings.TrimSpace(raw)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
