package main

import (
	"strings"

	"github.com/danmuck/sersrcgen/internal/config"
	"github.com/danmuck/sersrcgen/internal/generator"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type generateOptions struct {
	configPath  string
	protocol    string
	format      string
	data        []string
	dataFile    string
	width       int
	baud        int64
	testbench   bool
	pause       int
	msbFirst    bool
	maxData     int
	outDir      string
	memFile     string
	tbFile      string
	force       bool
	metricsFile string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	return bindGenerateCmd(root, &generateOptions{})
}

func bindGenerateCmd(root *rootOptions, opts *generateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [flags] [data...]",
		Short: "Serialize data into a mem file and optional testbench",
		Example: `  sersrcgen generate -p uart -f 8N1 -d 0x01,0x02,0x03,0x04,0x80 -b 500000 -T
  sersrcgen generate -f 7E2 --pause 2 -b 115200 0x55 0xAA
  sersrcgen generate -D data.txt -w 16 -b 9600 -T
  sersrcgen generate --config sersrcgen.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := buildJob(opts, cmd.Flags(), args)
			if err != nil {
				return err
			}
			res, err := generator.Run(cmd.Context(), job)
			if err != nil {
				return err
			}

			p := root.printer()
			out := cmd.OutOrStdout()
			if res.Skipped {
				p.Fprintln(out, p.Sprintf("msg.skipped"))
				return nil
			}
			p.Fprintln(out, p.Sprintf("msg.generated", res.Frames, res.BitCount, res.Format, res.Timing.BitNS))
			p.Fprintln(out, p.Sprintf("msg.wrote", res.MemPath))
			if res.TestbenchPath != "" {
				p.Fprintln(out, p.Sprintf("msg.wrote", res.TestbenchPath))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "TOML job file; flags override its values")
	flags.StringVarP(&opts.protocol, "protocol", "p", "u", "protocol: u(art); s(pi), i(2c), c(an) reserved")
	flags.StringVarP(&opts.format, "format", "f", "8N1", "UART format <data 5-9><parity N|O|E><stop 1|2>")
	flags.StringSliceVarP(&opts.data, "data", "d", nil, "inline data values, base 10 or 0x-prefixed hex")
	flags.StringVarP(&opts.dataFile, "data-file", "D", "", "read data values from a file")
	flags.IntVarP(&opts.width, "width", "w", 8, "data file value width in bits (8, 16, 24, 32)")
	flags.Int64VarP(&opts.baud, "baud", "b", 9600, "baud rate in bits per second")
	flags.BoolVarP(&opts.testbench, "testbench", "T", false, "also generate the Verilog testbench fragment")
	flags.IntVar(&opts.pause, "pause", 0, "idle bits inserted between frames")
	flags.BoolVar(&opts.msbFirst, "msb-first", false, "transmit data bits most significant first")
	flags.IntVar(&opts.maxData, "max-data", 16, "maximum number of data bytes")
	flags.StringVarP(&opts.outDir, "out-dir", "o", ".", "output directory")
	flags.StringVar(&opts.memFile, "mem-file", "serialized_data.mem", "mem file name")
	flags.StringVar(&opts.tbFile, "testbench-file", "testbench_boilerplate.v", "testbench file name")
	flags.BoolVar(&opts.force, "force", false, "overwrite existing artifacts")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write run metrics in Prometheus text format")
	return cmd
}

// buildJob starts from the config file (or defaults) and applies only the
// flags the user set, so file values survive unset flags.
func buildJob(opts *generateOptions, flags *pflag.FlagSet, args []string) (config.Job, error) {
	job := config.DefaultJob()
	if opts.configPath != "" {
		loaded, err := config.LoadJob(opts.configPath)
		if err != nil {
			return config.Job{}, err
		}
		job = loaded
	}

	if flags.Changed("protocol") {
		job.Protocol = strings.TrimSpace(opts.protocol)
	}
	if flags.Changed("format") {
		job.Format = strings.TrimSpace(opts.format)
	}
	if flags.Changed("data") || len(args) > 0 {
		job.InlineData = append(normalizeArgs(opts.data), normalizeArgs(args)...)
	}
	if flags.Changed("data-file") {
		job.DataFile = strings.TrimSpace(opts.dataFile)
	}
	if flags.Changed("width") {
		job.DataWidth = opts.width
	}
	if flags.Changed("baud") {
		job.Baud = opts.baud
	}
	if flags.Changed("testbench") {
		job.GenerateTestbench = opts.testbench
	}
	if flags.Changed("pause") {
		job.Pause = opts.pause
	}
	if flags.Changed("msb-first") {
		if opts.msbFirst {
			job.BitOrder = "msb"
		} else {
			job.BitOrder = "lsb"
		}
	}
	if flags.Changed("max-data") {
		job.MaxDataCount = opts.maxData
	}
	if flags.Changed("out-dir") {
		job.OutputDir = strings.TrimSpace(opts.outDir)
	}
	if flags.Changed("mem-file") {
		job.MemFile = strings.TrimSpace(opts.memFile)
	}
	if flags.Changed("testbench-file") {
		job.TestbenchFile = strings.TrimSpace(opts.tbFile)
	}
	if flags.Changed("force") {
		job.Overwrite = opts.force
	}
	if flags.Changed("metrics-file") {
		job.MetricsFile = strings.TrimSpace(opts.metricsFile)
	}
	return job, nil
}

func normalizeArgs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, raw := range in {
		v := strings.TrimSpace(raw)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
