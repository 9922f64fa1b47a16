package api

import (
	"time"

	"github.com/phrazzld/apprentice-kiosk/internal/domain"
)

// RevealRequest defines the payload for the quote reveal endpoint.
type RevealRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

// StartGenerationRequest defines the payload for starting card generation.
type StartGenerationRequest struct {
	DesignID string `json:"design_id" validate:"required,max=64"`
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// DesignsResponse lists the available card designs.
type DesignsResponse struct {
	Designs []domain.DesignOption `json:"designs"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}
