package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Context cancels on Ctrl+C or SIGTERM so batch and watch modes shut
	// down cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
