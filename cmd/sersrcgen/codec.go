package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/sersrcgen/internal/protocol/uart"
	"github.com/danmuck/sersrcgen/internal/timing"
	"github.com/spf13/cobra"
)

func newEncodeCmd(root *rootOptions) *cobra.Command {
	var msbFirst bool
	cmd := &cobra.Command{
		Use:   "encode <format>",
		Short: "Pack a UART format string into its rule byte",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := uart.EncodeFormat(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			if msbFirst {
				rule = rule.WithBitOrder(uart.BigEndian)
			}
			printRule(cmd, root, rule)
			return nil
		},
	}
	cmd.Flags().BoolVar(&msbFirst, "msb-first", false, "set the big-endian bit order flag")
	return cmd
}

func newDecodeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <rule-byte>",
		Short: "Unpack a UART rule byte such as 0x28",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(strings.TrimSpace(args[0]), 0, 8)
			if err != nil {
				return fmt.Errorf("%w: rule byte %q", uart.ErrInvalidRule, args[0])
			}
			rule, err := uart.FromByte(byte(v))
			if err != nil {
				return err
			}
			printRule(cmd, root, rule)
			return nil
		},
	}
}

func printRule(cmd *cobra.Command, root *rootOptions, rule uart.Rule) {
	p := root.printer()
	f := rule.Decode()
	p.Fprintln(cmd.OutOrStdout(), rule.String())
	p.Fprintln(cmd.OutOrStdout(), p.Sprintf("msg.rule", rule.Byte(), f.DataBits, f.Parity.String(), int(f.StopBits), f.BitOrder.String()))
}

func newTimingCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "timing <baud>",
		Short: "Print the per-bit replay delay for a baud rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baud, err := timing.ParseBaud(args[0])
			if err != nil {
				return err
			}
			tm, err := timing.ForBaud(baud)
			if err != nil {
				return err
			}
			p := root.printer()
			p.Fprintln(cmd.OutOrStdout(), p.Sprintf("msg.timing", tm.Baud, tm.BitNS, tm.HalfPeriodNS))
			return nil
		},
	}
}
