package kiosk

import (
	"math/rand"
	"sync"
	"time"
)

// Quotes are the inspirational messages revealed to visitors.
var Quotes = []string{
	"The future isn't just something you enter, it's something you create.",
	"Your perspective is the missing piece of the puzzle. Bring it.",
	"Don't just learn the rules. Learn them so you can break them better.",
	"Innovation starts with a question. Never stop asking 'What if?'",
	"You have the capability to change the game. Start playing.",
	"Small ripples create big waves. Your impact starts now.",
	"Be bold enough to use your voice, brave enough to listen to your heart.",
	"The expert in anything was once a beginner. Keep climbing.",
	"Your potential is a fire waiting for a spark. Be that spark.",
	"Make today so awesome that yesterday gets jealous.",
}

// QuotePicker chooses a quote uniformly at random. It is safe for
// concurrent use.
type QuotePicker struct {
	mu     sync.Mutex
	rng    *rand.Rand
	quotes []string
}

// NewQuotePicker returns a picker over quotes drawing from src. A nil src is
// seeded from the clock; an empty quotes slice falls back to Quotes.
func NewQuotePicker(src rand.Source, quotes []string) *QuotePicker {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	if len(quotes) == 0 {
		quotes = Quotes
	}
	return &QuotePicker{rng: rand.New(src), quotes: quotes}
}

// Pick returns one quote.
func (p *QuotePicker) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quotes[p.rng.Intn(len(p.quotes))]
}
