package main

import (
	"github.com/paradise-calc/paradise/internal/config"
	"github.com/spf13/cobra"
)

func newCompareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <plan.yaml>",
		Short: "Compare the plan and scenarios of a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			_, err = opts.report(cmd, cfg)
			return err
		},
	}
}
