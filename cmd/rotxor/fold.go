package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"rotxor/internal/report"
	"rotxor/internal/rotxor"
)

func newFoldCmd(opts *options) *cobra.Command {
	var initial string

	cmd := &cobra.Command{
		Use:   "fold [byte...]",
		Short: "Fold a sequence of bytes from an initial state",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseBytes([]string{initial})
			if err != nil {
				return err
			}
			seq, err := parseBytes(args)
			if err != nil {
				return err
			}

			h := rotxor.NewWithState(start[0])
			for i, c := range seq {
				state := h.WriteB(c)
				opts.log.Debug("fold", "index", i, "input", c, "state", state)
			}
			return report.WriteState(cmd.OutOrStdout(), h.Sum8(), report.Format(opts.cfg.Format))
		},
	}

	cmd.Flags().StringVar(&initial, "initial", "0x"+strconv.FormatUint(uint64(rotxor.InitialState), 16), "Initial state")
	return cmd
}
