// Package main runs the circulation desk as an interactive terminal program.
//
// Configuration comes from flags, CIRCULATION_* environment variables and an optional .env file,
// see config.Load. Log records go to stderr, so redirect it (2>desk.log) to keep the menus clean.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 2
	}

	injector := NewContainer(cfg, Terminal{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	log := do.MustInvoke[*slog.Logger](injector)

	menu, err := do.Invoke[*Menu](injector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start the circulation desk: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- menu.Run(ctx) }()

	var runErr error
	select {
	case runErr = <-done:
	case <-ctx.Done():
		log.Info("Interrupted, closing the circulation desk")
	}

	if report := injector.Shutdown(); report != nil && !report.Succeed {
		log.Error("Shutdown error", "error", report.Error())
	}

	if runErr != nil {
		log.Error("Circulation desk stopped", "error", runErr)
		return 1
	}

	return 0
}
