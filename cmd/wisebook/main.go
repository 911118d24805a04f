package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/wisebook/wisebook/internal/cli"
	"github.com/wisebook/wisebook/internal/config"
	"github.com/wisebook/wisebook/internal/logging"

	_ "modernc.org/sqlite"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("error initializing app: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("error: %v", err)
	}
}
