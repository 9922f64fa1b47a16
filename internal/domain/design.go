package domain

import "strings"

// DesignOption is a named pair of prompts used to generate the front and the
// back of one card template. Options are defined once and never mutated.
type DesignOption struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FrontPrompt string `json:"front_prompt"`
	BackPrompt  string `json:"back_prompt"`
}

// Validate checks that the option can drive a generation.
func (o DesignOption) Validate() error {
	if strings.TrimSpace(o.ID) == "" {
		return NewValidationError("id", "is required", ErrEmptyContent)
	}
	if strings.TrimSpace(o.FrontPrompt) == "" {
		return NewValidationError("front_prompt", "is required", ErrEmptyContent)
	}
	if strings.TrimSpace(o.BackPrompt) == "" {
		return NewValidationError("back_prompt", "is required", ErrEmptyContent)
	}
	return nil
}

// Prompt returns the prompt for the given side.
func (o DesignOption) Prompt(side Side) (string, error) {
	switch side {
	case SideFront:
		return o.FrontPrompt, nil
	case SideBack:
		return o.BackPrompt, nil
	default:
		return "", ErrInvalidSide
	}
}

// designCatalog holds the built-in card templates offered by the kiosk.
var designCatalog = []DesignOption{
	{
		ID:          "classic",
		Title:       "Classic Apprentice",
		Description: "Clean white card with the four brand dots and a bold welcome message.",
		FrontPrompt: "A square 3x3 inch printable greeting card front, flat vector design, " +
			"white background, four small circles in blue #4285F4, red #DB4437, yellow #F4B400 " +
			"and green #0F9D58, the words 'Welcome, Apprentice' in a friendly geometric sans-serif, " +
			"generous margins, print-ready, no photographic elements",
		BackPrompt: "A square 3x3 inch printable greeting card back, flat vector design, " +
			"white background, a thin multicolor line in blue, red, yellow and green along the bottom edge, " +
			"a small centered lightbulb icon, lots of empty space for a handwritten note, print-ready",
	},
	{
		ID:          "futurist",
		Title:       "Future Builder",
		Description: "Cool indigo and teal gradients with abstract circuitry for the makers.",
		FrontPrompt: "A square 3x3 inch printable card front, abstract illustration of glowing circuit " +
			"paths forming a rising arrow, cool palette of indigo #6366f1, teal #2dd4bf and purple #a855f7, " +
			"soft gradients, the words 'Build What's Next' in a modern sans-serif, print-ready",
		BackPrompt: "A square 3x3 inch printable card back, subtle indigo to teal gradient, faint " +
			"geometric grid pattern, small rocket icon in the lower corner, calm and minimal, print-ready",
	},
}

// DesignOptions returns a copy of the built-in catalog.
func DesignOptions() []DesignOption {
	out := make([]DesignOption, len(designCatalog))
	copy(out, designCatalog)
	return out
}

// FindDesignOption looks up a built-in option by ID.
func FindDesignOption(id string) (DesignOption, error) {
	for _, o := range designCatalog {
		if o.ID == id {
			return o, nil
		}
	}
	return DesignOption{}, ErrDesignNotFound
}
