package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/farcloser/baseline/internal/logdir"
)

const (
	exitCodeFailures = 1
	exitCodeUsage    = 2
)

func main() {
	ctx := context.Background()

	if err := reportCommand().Run(ctx, os.Args); err != nil {
		if !errors.Is(err, errFailures) {
			slog.Error("failed to run", "error", err)
		}

		os.Exit(exitCode(err))
	}
}

// exitCode maps a run error to the process exit code.
// Configuration errors are 2, failed checks and anything unexpected are 1.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage),
		errors.Is(err, logdir.ErrNotDirectory),
		errors.Is(err, logdir.ErrNoLogFiles):
		return exitCodeUsage
	default:
		return exitCodeFailures
	}
}
