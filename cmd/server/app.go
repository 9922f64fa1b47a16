package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/apprentice-kiosk/internal/config"
	"github.com/phrazzld/apprentice-kiosk/internal/generation"
	"github.com/phrazzld/apprentice-kiosk/internal/kiosk"
	"github.com/phrazzld/apprentice-kiosk/internal/platform/gemini"
	"github.com/phrazzld/apprentice-kiosk/internal/service"
)

// application holds all the dependencies for the server
type application struct {
	config *config.Config
	logger *slog.Logger

	generator generation.ImageGenerator
	sessions  *kiosk.SessionStore
	kiosk     *kiosk.Kiosk
}

// newApplication creates the Gemini generator and wires it into the
// session store and kiosk.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewImageGenerator(ctx, logger.With("component", "gemini_image_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image generator: %w", err)
	}

	return newApplicationWithGenerator(cfg, logger, generator)
}

// newApplicationWithGenerator wires the application around an existing
// image generator.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.ImageGenerator,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		generator: generator,
		kiosk:     kiosk.New(kiosk.NewQuotePicker(nil, nil), kiosk.DefaultCelebrator{}),
	}

	var err error
	app.sessions, err = kiosk.NewSessionStore(
		time.Duration(cfg.Kiosk.SessionTTLMinutes)*time.Minute,
		func() (*service.Coordinator, error) {
			return service.NewCoordinator(app.generator, logger)
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns when ctx is cancelled and the server has shut down.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup ends every session, cancelling in-flight generation.
func (app *application) cleanup() {
	if app.sessions != nil {
		app.sessions.Close()
	}
}
