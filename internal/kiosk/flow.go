package kiosk

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Step is a screen of the kiosk flow.
type Step string

// Kiosk steps, in the order a visitor sees them.
const (
	StepQR     Step = "qr"
	StepInput  Step = "input"
	StepResult Step = "result"
)

const (
	// StartParam is the query parameter the QR code appends so scanners land
	// directly on the name step.
	StartParam = "s"

	// DefaultQRServiceURL renders QR codes as images.
	DefaultQRServiceURL = "https://quickchart.io/qr"
)

// ErrInvalidBaseURL is returned when a kiosk base URL cannot be parsed.
var ErrInvalidBaseURL = errors.New("invalid kiosk base URL")

// StepFromQuery returns StepInput when the visitor arrived via the QR code
// (s=1), StepQR otherwise.
func StepFromQuery(q url.Values) Step {
	if q.Get(StartParam) == "1" {
		return StepInput
	}
	return StepQR
}

// CorrectPreviewURL rewrites a Vercel preview deployment URL
// (project-git-branch-user.vercel.app) to the production alias
// (project.vercel.app) so phones scanning the code are not asked to log in.
// Any other URL is returned unchanged.
func CorrectPreviewURL(base string) string {
	if !strings.Contains(base, "-git-") || !strings.Contains(base, ".vercel.app") {
		return base
	}

	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return base
	}

	project, _, found := strings.Cut(u.Hostname(), "-git-")
	if !found || project == "" {
		return base
	}

	host := project + ".vercel.app"
	if port := u.Port(); port != "" {
		host += ":" + port
	}
	u.Host = host
	return u.String()
}

// TargetURL normalises the page URL the kiosk is served from: the query
// string is dropped and preview deployments are corrected.
func TargetURL(pageURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q must be an absolute http(s) URL", ErrInvalidBaseURL, pageURL)
	}

	u.RawQuery = ""
	u.Fragment = ""
	return CorrectPreviewURL(u.String()), nil
}

// StudentURL is the URL encoded in the QR code: target without a trailing
// slash, with the start flag appended.
func StudentURL(target string) string {
	return strings.TrimSuffix(target, "/") + "?" + StartParam + "=1"
}

// QRImageURL returns the QR image URL for studentURL rendered by service
// (DefaultQRServiceURL when empty).
func QRImageURL(service, studentURL string) string {
	if service == "" {
		service = DefaultQRServiceURL
	}
	return service +
		"?text=" + url.QueryEscape(studentURL) +
		"&size=500&ecLevel=L&dark=000000&light=ffffff&margin=4"
}

// QRCode is everything the QR step needs to render.
type QRCode struct {
	TargetURL  string `json:"target_url"`
	StudentURL string `json:"student_url"`
	ImageURL   string `json:"qr_image_url"`
}

// NewQRCode builds the QR step data for the page served at pageURL.
func NewQRCode(service, pageURL string) (QRCode, error) {
	target, err := TargetURL(pageURL)
	if err != nil {
		return QRCode{}, err
	}
	student := StudentURL(target)
	return QRCode{
		TargetURL:  target,
		StudentURL: student,
		ImageURL:   QRImageURL(service, student),
	}, nil
}
