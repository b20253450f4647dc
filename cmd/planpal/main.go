package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayrabia/planpal/internal/cli"
	"github.com/ayrabia/planpal/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.New(config.Load())
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
