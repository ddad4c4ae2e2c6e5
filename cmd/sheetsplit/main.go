// Package main provides the CLI entry point for sheetsplit.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	app := newCLIContext()
	err := newRootCommand(app).ExecuteContext(ctx)
	stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		app.logger.Error("sheetsplit failed", "error", err)
	}
	app.close()
	if err != nil {
		os.Exit(1)
	}
}
