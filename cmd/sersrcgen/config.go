package main

import (
	"github.com/danmuck/sersrcgen/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or validate TOML job files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a job config template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "sersrcgen.toml"
			if len(args) == 1 {
				target = args[0]
			}
			if err := config.WriteTemplate(target, force); err != nil {
				return err
			}
			p := root.printer()
			p.Fprintln(cmd.OutOrStdout(), p.Sprintf("msg.config_written", target))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite existing config file")

	validateCmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Load and validate a job config without writing artifacts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "sersrcgen.toml"
			if len(args) == 1 {
				path = args[0]
			}
			job, err := config.LoadJob(path)
			if err != nil {
				return err
			}
			plan, err := job.Validate()
			if err != nil {
				return err
			}
			p := root.printer()
			p.Fprintln(cmd.OutOrStdout(), p.Sprintf("msg.config_valid",
				path, plan.Protocol.String(), plan.Framer.Describe(plan.Spec), plan.Source.String()))
			return nil
		},
	}

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
