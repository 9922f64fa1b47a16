package api

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/phrazzld/apprentice-kiosk/internal/api/shared"
	"github.com/phrazzld/apprentice-kiosk/internal/domain"
	"github.com/phrazzld/apprentice-kiosk/internal/kiosk"
	"github.com/phrazzld/apprentice-kiosk/internal/platform/logger"
	"github.com/phrazzld/apprentice-kiosk/internal/web"
)

// KioskHandler serves the kiosk page, QR data and the quote reveal.
type KioskHandler struct {
	kiosk         *kiosk.Kiosk
	qrServiceURL  string
	publicBaseURL string
	logger        *slog.Logger
}

// NewKioskHandler creates a KioskHandler. publicBaseURL, when set, is the
// URL encoded in the QR code instead of the URL the page was requested on.
func NewKioskHandler(k *kiosk.Kiosk, qrServiceURL, publicBaseURL string, logger *slog.Logger) *KioskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &KioskHandler{
		kiosk:         k,
		qrServiceURL:  qrServiceURL,
		publicBaseURL: publicBaseURL,
		logger:        logger.With(slog.String("component", "kiosk_handler")),
	}
}

// requestURL reconstructs the absolute URL the browser used for r.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host + r.URL.Path
}

func (h *KioskHandler) pageURL(r *http.Request) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}
	return requestURL(r)
}

// Page handles GET / requests
func (h *KioskHandler) Page(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	qr, err := kiosk.NewQRCode(h.qrServiceURL, h.pageURL(r))
	if err != nil {
		// The page still works for manual entry without a QR code.
		log.WarnContext(r.Context(), "could not build QR code", slog.String("error", err.Error()))
	}

	page := web.KioskPage(web.PageData{
		Step:    kiosk.StepFromQuery(r.URL.Query()),
		QR:      qr,
		Designs: domain.DesignOptions(),
		Click:   h.kiosk.Click(),
	})
	templ.Handler(page, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to render page", err)
		})
	})).ServeHTTP(w, r)
}

// QRCode handles GET /api/kiosk/qr requests. The optional base query
// parameter overrides the page URL.
func (h *KioskHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	if base == "" {
		base = h.pageURL(r)
	}

	qr, err := kiosk.NewQRCode(h.qrServiceURL, base)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, qr)
}

// Reveal handles POST /api/kiosk/reveal requests
func (h *KioskHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	var req RevealRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	revelation, err := h.kiosk.Reveal(req.Name)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		InfoContext(r.Context(), "quote revealed", slog.Int("name_length", len(revelation.Name)))
	shared.RespondWithJSON(w, r, http.StatusOK, revelation)
}

// ListDesigns handles GET /api/designs requests
func ListDesigns(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, DesignsResponse{Designs: domain.DesignOptions()})
}
