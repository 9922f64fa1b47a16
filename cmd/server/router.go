package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/apprentice-kiosk/internal/api"
	apiMiddleware "github.com/phrazzld/apprentice-kiosk/internal/api/middleware"
	"github.com/phrazzld/apprentice-kiosk/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	kioskHandler := api.NewKioskHandler(
		app.kiosk,
		app.config.Kiosk.QRServiceURL,
		app.config.Kiosk.PublicBaseURL,
		app.logger,
	)
	generationHandler := api.NewGenerationHandler(app.sessions, app.logger)

	r.Get("/", kioskHandler.Page)

	r.Route("/api", func(r chi.Router) {
		r.Get("/designs", api.ListDesigns)

		r.Get("/kiosk/qr", kioskHandler.QRCode)
		r.Post("/kiosk/reveal", kioskHandler.Reveal)

		r.Post("/sessions", generationHandler.CreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Post("/generations", generationHandler.StartGeneration)
			r.Get("/generations", generationHandler.GetGenerations)
			r.Post("/generations/{side}/retry", generationHandler.RetrySide)
			r.Get("/images/{side}", generationHandler.DownloadImage)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, api.HealthResponse{
			Status:   "ok",
			Sessions: app.sessions.Len(),
		})
	})

	return r
}
