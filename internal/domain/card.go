package domain

import (
	"fmt"
	"strings"
	"time"
)

// Side identifies one of the two independently generated card faces.
type Side string

// Possible card sides.
const (
	SideFront Side = "Front"
	SideBack  Side = "Back"
)

// Sides lists both card sides in display order.
var Sides = []Side{SideFront, SideBack}

// ParseSide converts a case-insensitive side name ("front", "Back") to a Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "front":
		return SideFront, nil
	case "back":
		return SideBack, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}

// IsValid reports whether s is Front or Back.
func (s Side) IsValid() bool {
	return s == SideFront || s == SideBack
}

// DownloadFilename is the deterministic file name offered for a side's image
// before its type is known.
func (s Side) DownloadFilename() string {
	return s.FilenameFor("image/png")
}

// FilenameFor returns the side's file name with an extension matching
// mimeType. Unrecognised types fall back to .png.
func (s Side) FilenameFor(mimeType string) string {
	ext := ".png"
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/webp":
		ext = ".webp"
	case "image/gif":
		ext = ".gif"
	}
	return "card-" + strings.ToLower(string(s)) + ext
}

// GeneratedImage is the result of one successful generation for a side.
// It is replaced wholesale on regeneration, never mutated in place.
type GeneratedImage struct {
	Side     Side   `json:"side"`
	URL      string `json:"url"`
	MIMEType string `json:"mime_type"`
	Filename string `json:"filename"`
	Data     []byte `json:"-"`
}

// Phase is the state of one side's generation.
type Phase string

// Per-side phases. Idle is initial; Succeeded, Empty and Failed are terminal
// until an explicit restart moves the side back to Loading.
const (
	PhaseIdle      Phase = "idle"
	PhaseLoading   Phase = "loading"
	PhaseSucceeded Phase = "succeeded"
	PhaseEmpty     Phase = "empty"
	PhaseFailed    Phase = "failed"
)

// IsTerminal reports whether the phase is a resting state after a call.
func (p Phase) IsTerminal() bool {
	return p == PhaseSucceeded || p == PhaseEmpty || p == PhaseFailed
}

// SideState is the snapshot of one side exposed to the presentation layer.
type SideState struct {
	Side      Side            `json:"side"`
	Phase     Phase           `json:"phase"`
	Image     *GeneratedImage `json:"image,omitempty"`
	Error     string          `json:"error,omitempty"`
	Epoch     uint64          `json:"epoch"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CardState is the snapshot of both sides for the currently selected option.
type CardState struct {
	DesignID string    `json:"design_id,omitempty"`
	Front    SideState `json:"front"`
	Back     SideState `json:"back"`
}

// Side returns the state for s.
func (c CardState) Side(s Side) SideState {
	if s == SideBack {
		return c.Back
	}
	return c.Front
}

// Settled reports whether neither side is loading.
func (c CardState) Settled() bool {
	return c.Front.Phase != PhaseLoading && c.Back.Phase != PhaseLoading
}
