package kiosk

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned when a visitor submits a blank name.
var ErrEmptyName = errors.New("name cannot be empty")

// Revelation is the result screen for one visitor.
type Revelation struct {
	Name        string       `json:"name"`
	Greeting    string       `json:"greeting"`
	Quote       string       `json:"quote"`
	Celebration *Celebration `json:"celebration,omitempty"`
}

// Kiosk runs the name-to-quote reveal.
type Kiosk struct {
	quotes     *QuotePicker
	celebrator Celebrator
}

// New returns a Kiosk drawing quotes from picker. celebrator may be nil.
func New(picker *QuotePicker, celebrator Celebrator) *Kiosk {
	if picker == nil {
		picker = NewQuotePicker(nil, nil)
	}
	return &Kiosk{quotes: picker, celebrator: celebrator}
}

// Reveal greets name with a quote and, when a Celebrator is configured, the
// celebration cues.
func (k *Kiosk) Reveal(name string) (Revelation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Revelation{}, ErrEmptyName
	}

	r := Revelation{
		Name:     name,
		Greeting: "Hello, " + name + "!",
		Quote:    k.quotes.Pick(),
	}
	if k.celebrator != nil {
		c := k.celebrator.Celebrate()
		if c.Confetti.Bursts == nil {
			c.Confetti.Bursts = c.Confetti.Schedule()
		}
		r.Celebration = &c
	}
	return r, nil
}

// Click returns the click cue, or nil without a Celebrator.
func (k *Kiosk) Click() *SoundCue {
	if k.celebrator == nil {
		return nil
	}
	c := k.celebrator.Click()
	return &c
}
