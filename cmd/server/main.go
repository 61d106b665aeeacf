// Package main implements the parky-api command: the HTTP server for the
// national parks and trails API plus its migration and admin tooling.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/parky-api/internal/redact"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("command failed", slog.String("error", redact.Error(err)))
		stop()
		os.Exit(1)
	}
}
