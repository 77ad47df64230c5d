package main

import (
	"github.com/spf13/cobra"

	"rotxor/internal/report"
	"rotxor/internal/rotxor"
)

func newStepCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "step <state> <byte>",
		Short: "Apply a single rotate-xor step",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseBytes(args)
			if err != nil {
				return err
			}
			state := rotxor.Step(in[0], in[1])
			opts.log.Debug("step", "state", in[0], "input", in[1], "result", state)
			return report.WriteState(cmd.OutOrStdout(), state, report.Format(opts.cfg.Format))
		},
	}
}
