package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// main is the entry point of the random service. Commands run under a
// context that is cancelled on SIGINT or SIGTERM so the server can shut
// down gracefully.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
