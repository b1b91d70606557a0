package main

import (
	"github.com/danmuck/sersrcgen/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type rootOptions struct {
	lang     string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "sersrcgen",
		Short: "Generate serial line mem files and replay testbenches",
		Long: `sersrcgen serializes data values into the bit-exact line sequence of a
serial protocol and writes it as a one-bit-per-line mem file, optionally with
a Verilog testbench fragment that replays it at the requested baud rate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logLevel == "" {
				return nil
			}
			lvl, ok := logging.ParseLevel(opts.logLevel)
			if !ok {
				return errUnknownLogLevel(opts.logLevel)
			}
			zerolog.SetGlobalLevel(lvl)
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.lang, "lang", "", "message language (en, de)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level override (trace, debug, info, warn, error, off)")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newEncodeCmd(opts),
		newDecodeCmd(opts),
		newTimingCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

func (o *rootOptions) printer() *message.Printer {
	tag := language.AmericanEnglish
	if o.lang != "" {
		if parsed, err := language.Parse(o.lang); err == nil {
			tag = parsed
		}
	}
	return newPrinter(tag)
}
