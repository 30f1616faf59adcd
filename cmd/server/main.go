package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"latestworks.dev/internal/app"
	"latestworks.dev/internal/config"
	"latestworks.dev/internal/logger"
	"latestworks.dev/internal/server"
)

func main() {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger("main")

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("Server stopped")
}

// run serves until SIGINT/SIGTERM. Deferred cleanup always runs before it
// returns.
func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("building application: %w", err)
	}
	defer a.Close()

	if a.Store != nil {
		go a.Store.RunCleanup(ctx, cfg.Analytics.RetentionMonths, 24*time.Hour)
	}

	return server.New(cfg.Addr(), a.Handler).Run(ctx, cfg.ShutdownTimeout)
}
