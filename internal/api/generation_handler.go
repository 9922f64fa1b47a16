package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/apprentice-kiosk/internal/api/shared"
	"github.com/phrazzld/apprentice-kiosk/internal/domain"
	"github.com/phrazzld/apprentice-kiosk/internal/kiosk"
	"github.com/phrazzld/apprentice-kiosk/internal/platform/logger"
)

// SessionStore is the slice of kiosk.SessionStore the handlers use.
type SessionStore interface {
	Create() (*kiosk.Session, error)
	Get(id string) (*kiosk.Session, error)
}

// GenerationHandler handles session and card generation requests
type GenerationHandler struct {
	sessions SessionStore
	logger   *slog.Logger
}

// NewGenerationHandler creates a new GenerationHandler
func NewGenerationHandler(sessions SessionStore, logger *slog.Logger) *GenerationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerationHandler{
		sessions: sessions,
		logger:   logger.With(slog.String("component", "generation_handler")),
	}
}

// session resolves the {id} path parameter, writing an error response when
// it does not name a live session.
func (h *GenerationHandler) session(w http.ResponseWriter, r *http.Request) (*kiosk.Session, bool) {
	sess, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondWithMappedError(w, r, err)
		return nil, false
	}
	return sess, true
}

// pathSide parses the {side} path parameter.
func pathSide(w http.ResponseWriter, r *http.Request) (domain.Side, bool) {
	side, err := domain.ParseSide(chi.URLParam(r, "side"))
	if err != nil {
		respondWithMappedError(w, r, err)
		return "", false
	}
	return side, true
}

// CreateSession handles POST /api/sessions requests
func (h *GenerationHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Create()
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SessionResponse{
		SessionID: sess.ID,
		CreatedAt: sess.CreatedAt,
	})
}

// StartGeneration handles POST /api/sessions/{id}/generations requests.
// It returns 202 Accepted with both sides Loading.
func (h *GenerationHandler) StartGeneration(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req StartGenerationRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	option, err := domain.FindDesignOption(req.DesignID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	ctx := logger.WithLogger(r.Context(),
		logger.FromContextOrDefault(r.Context(), h.logger).With(slog.String("session_id", sess.ID)))
	state, err := sess.Coordinator.Start(ctx, option)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, state)
}

// GetGenerations handles GET /api/sessions/{id}/generations requests
func (h *GenerationHandler) GetGenerations(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, sess.Coordinator.Snapshot())
}

// RetrySide handles POST /api/sessions/{id}/generations/{side}/retry requests
func (h *GenerationHandler) RetrySide(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	side, ok := pathSide(w, r)
	if !ok {
		return
	}

	ctx := logger.WithLogger(r.Context(),
		logger.FromContextOrDefault(r.Context(), h.logger).With(slog.String("session_id", sess.ID)))
	state, err := sess.Coordinator.Regenerate(ctx, side)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, state)
}

// DownloadImage handles GET /api/sessions/{id}/images/{side} requests
func (h *GenerationHandler) DownloadImage(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	side, ok := pathSide(w, r)
	if !ok {
		return
	}

	img, err := sess.Coordinator.Image(side)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithAttachment(w, r, img.MIMEType, img.Filename, img.Data)
}
