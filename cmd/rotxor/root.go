package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rotxor/internal/config"
	"rotxor/internal/logging"
	"rotxor/internal/report"
	"rotxor/internal/rotxor"
)

type options struct {
	configPath string
	envFile    string
	format     string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rotxor",
		Short:         "Fold bytes through the rotate-xor hash",
		Long:          `Without a subcommand, rotxor folds the two reference sequences [1 0] and [1 1] from 0xaa and prints each final state.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			results := report.Run(report.Reference)
			for _, r := range results {
				opts.log.Debug("folded sequence", "sequence", r.Name, "state", r.State)
			}
			return report.Write(cmd.OutOrStdout(), results, report.Format(opts.cfg.Format))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to the YAML configuration file")
	flags.StringVar(&opts.envFile, "env-file", "", "Optional dotenv file with ROTXOR_* settings")
	flags.StringVar(&opts.format, "format", "", "Output format: decimal or hex (overrides config)")

	cmd.AddCommand(newStepCmd(opts), newFoldCmd(opts))
	return cmd
}

func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(cfg, o.envFile); err != nil {
		return err
	}
	if o.format != "" {
		cfg.Format = o.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg
	o.log = logging.New(cmd.ErrOrStderr(), cfg.Level())
	o.log.Debug("configuration loaded", "config", o.configPath, "format", cfg.Format, "log_level", cfg.LogLevel)
	return nil
}

// parseBytes accepts Go integer literals: 170, 0xaa, 0b10101010.
func parseBytes(args []string) ([]byte, error) {
	values := make([]int64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(strings.TrimSpace(arg), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: argument '%s' is not a 64-bit integer", rotxor.ErrInvalidInput, arg)
		}
		values[i] = v
	}
	return rotxor.Bytes(values)
}
