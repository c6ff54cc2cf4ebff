package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bjaus/recordtable/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	app := &cli.App{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	if err := cli.Execute(ctx, app, os.Args[1:]); err != nil {
		slog.Error("recordtable failed", "error", err)
		cancel()
		os.Exit(1)
	}
}
