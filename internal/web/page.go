package web

import (
	"github.com/phrazzld/apprentice-kiosk/internal/domain"
	"github.com/phrazzld/apprentice-kiosk/internal/kiosk"
)

//go:generate templ generate

// PageData is everything the kiosk page renders server-side. The reveal and
// card generation steps are driven from the browser through the JSON API.
type PageData struct {
	Step    kiosk.Step
	QR      kiosk.QRCode
	Designs []domain.DesignOption
	// Click is played on button presses; nil keeps the page silent.
	Click *kiosk.SoundCue
}
