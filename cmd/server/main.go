// Package main implements the entry point for the apprentice kiosk server,
// which serves the event kiosk page and generates front/back card designs
// with a Gemini image model.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"

	"github.com/phrazzld/apprentice-kiosk/internal/config"
	"github.com/phrazzld/apprentice-kiosk/internal/platform/logger"
)

// main is the entry point for the kiosk server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("kiosk server: %v", err)
	}
}

// run loads configuration, wires the application and serves until ctx is
// cancelled.
func run(ctx context.Context) error {
	cfg, err := initializeApp(".env")
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// initializeApp loads an optional dotenv file, the configuration and sets up
// structured logging. Variables already present in the environment win over
// the dotenv file.
func initializeApp(envFile string) (*config.Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"image_model", cfg.LLM.ImageModel,
		"session_ttl_minutes", cfg.Kiosk.SessionTTLMinutes)
	slog.Debug("LLM configuration", "api_key_present", cfg.LLM.GeminiAPIKey != "")

	return cfg, nil
}
