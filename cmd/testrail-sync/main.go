// Package main holds the main command line interface of testrail-sync. The package itself is mainly concerned with
// configuring the necessary options before passing control to `internal/cli`, which holds the business logic itself.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rwx-research/testrail-sync/internal/errors"
)

func main() {
	for _, err := range initializationErrors {
		fmt.Fprintln(os.Stderr, err)
	}

	if len(initializationErrors) > 0 {
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	// Logging is expected to take place in `internal/cli`, as text output is the primary way of communicating
	// to a user on the terminal and is therefore one of our main concerns.
	// This error here is mainly used to communicate any necessary exit code.
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if e, ok := errors.AsExecutionError(err); ok {
			os.Exit(e.Code)
		}
		os.Exit(1)
	}
}
