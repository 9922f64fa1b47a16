package generation

import (
	"context"
	"encoding/base64"
)

// Fixed imaging parameters for kiosk cards.
const (
	// AspectRatioSquare is the only aspect ratio the kiosk requests.
	AspectRatioSquare = "1:1"

	// ImageSize1K is the resolution tier used for print-quality cards.
	ImageSize1K = "1K"

	// DefaultMIMEType is assumed when the service does not label image data.
	DefaultMIMEType = "image/png"
)

// Request is a single-shot image generation request. It is built fresh for
// each call and carries no identity beyond the call itself.
type Request struct {
	Prompt      string
	AspectRatio string
	ImageSize   string
}

// NewRequest builds a Request with the kiosk's fixed imaging parameters.
func NewRequest(prompt string) Request {
	return Request{
		Prompt:      prompt,
		AspectRatio: AspectRatioSquare,
		ImageSize:   ImageSize1K,
	}
}

// Image is one generated image artifact.
type Image struct {
	MIMEType string
	Data     []byte
}

// DataURI renders the image as a self-describing data URI,
// e.g. "data:image/png;base64,iVBOR...".
func (i *Image) DataURI() string {
	mime := i.MIMEType
	if mime == "" {
		mime = DefaultMIMEType
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// ImageGenerator defines the interface for turning one prompt into one image.
// This interface serves as a boundary between the application core and
// external generative services, following the hexagonal architecture pattern.
type ImageGenerator interface {
	// GenerateImage makes exactly one call to the image service.
	//
	// Returns:
	//   - (image, nil) when the response carried inline image data
	//   - (nil, nil) when the response was well formed but held no image
	//   - (nil, err) on failure; err wraps ErrGenerationFailed
	GenerateImage(ctx context.Context, req Request) (*Image, error)
}
