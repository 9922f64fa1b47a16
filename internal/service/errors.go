package service

import "errors"

// Sentinel errors returned by the coordinator. Callers check them with
// errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrNoDesignSelected indicates a side was regenerated before any design
	// option was started. API layer should map this to HTTP 409 Conflict.
	ErrNoDesignSelected = errors.New("no design option selected")

	// ErrCoordinatorClosed indicates the coordinator's session has ended.
	// API layer should map this to HTTP 410 Gone.
	ErrCoordinatorClosed = errors.New("coordinator is closed")
)
