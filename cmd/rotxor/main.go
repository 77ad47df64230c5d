package main

import (
	"io"
	"log/slog"
	"os"

	"rotxor/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		log := opts.log
		if log == nil {
			log = logging.New(stderr, slog.LevelWarn)
		}
		log.Error("rotxor failed", "error", err)
		return 1
	}
	return 0
}
