package kiosk

import "time"

// Waveform is an oscillator shape used by sound cues.
type Waveform string

// Oscillator shapes.
const (
	WaveSine     Waveform = "sine"
	WaveTriangle Waveform = "triangle"
)

// Tone is one oscillator voice of a sound cue. EndHz differs from StartHz
// for a pitch sweep. Times are in milliseconds for the browser.
type Tone struct {
	StartHz    float64  `json:"start_hz"`
	EndHz      float64  `json:"end_hz"`
	Wave       Waveform `json:"wave"`
	OffsetMS   int64    `json:"offset_ms"`
	DurationMS int64    `json:"duration_ms"`
	Gain       float64  `json:"gain"`
}

// SoundCue is a short sequence of tones.
type SoundCue struct {
	Name  string `json:"name"`
	Tones []Tone `json:"tones"`
}

// ConfettiCue describes a burst of confetti fired from both sides of the
// screen every IntervalMS until DurationMS elapses. The particle count
// decays linearly from MaxParticles as time runs out.
type ConfettiCue struct {
	DurationMS   int64           `json:"duration_ms"`
	IntervalMS   int64           `json:"interval_ms"`
	MaxParticles int             `json:"max_particles"`
	Colors       []string        `json:"colors"`
	Bursts       []ConfettiBurst `json:"bursts,omitempty"`
}

// ConfettiBurst is one scheduled firing, AtMS after the celebration starts.
type ConfettiBurst struct {
	AtMS      int64 `json:"at_ms"`
	Particles int   `json:"particles"`
}

// ParticlesAt returns the particle count for a burst fired with remaining
// time left on the clock.
func (c ConfettiCue) ParticlesAt(remaining time.Duration) int {
	total := time.Duration(c.DurationMS) * time.Millisecond
	if remaining <= 0 || total <= 0 {
		return 0
	}
	if remaining > total {
		remaining = total
	}
	return int(float64(c.MaxParticles) * float64(remaining) / float64(total))
}

// Schedule lists the bursts fired every IntervalMS, starting one interval in,
// until the duration runs out.
func (c ConfettiCue) Schedule() []ConfettiBurst {
	if c.IntervalMS <= 0 || c.DurationMS <= 0 {
		return nil
	}
	var bursts []ConfettiBurst
	for at := c.IntervalMS; at < c.DurationMS; at += c.IntervalMS {
		remaining := time.Duration(c.DurationMS-at) * time.Millisecond
		if n := c.ParticlesAt(remaining); n > 0 {
			bursts = append(bursts, ConfettiBurst{AtMS: at, Particles: n})
		}
	}
	return bursts
}

// Celebration is the cue bundle played when a quote is revealed.
type Celebration struct {
	Confetti ConfettiCue `json:"confetti"`
	Sound    SoundCue    `json:"sound"`
}

// Celebrator supplies celebration cues. Kiosks without a screen or speaker
// run with a nil Celebrator.
type Celebrator interface {
	Celebrate() Celebration
	Click() SoundCue
}

// DefaultCelebrator produces the kiosk's standard cool-coloured confetti and
// rising chime.
type DefaultCelebrator struct{}

var _ Celebrator = DefaultCelebrator{}

// Celebrate returns the reveal celebration.
func (DefaultCelebrator) Celebrate() Celebration {
	notes := []float64{523.25, 659.25, 783.99, 987.77} // C5 E5 G5 B5
	tones := make([]Tone, len(notes))
	for i, hz := range notes {
		tones[i] = Tone{
			StartHz:    hz,
			EndHz:      hz,
			Wave:       WaveTriangle,
			OffsetMS:   int64(i) * 50,
			DurationMS: 2000,
			Gain:       0.05,
		}
	}

	return Celebration{
		Confetti: ConfettiCue{
			DurationMS:   3000,
			IntervalMS:   250,
			MaxParticles: 50,
			Colors:       []string{"#6366f1", "#06b6d4", "#a855f7"},
		},
		Sound: SoundCue{Name: "success", Tones: tones},
	}
}

// Click returns the short tick played on button presses.
func (DefaultCelebrator) Click() SoundCue {
	return SoundCue{
		Name: "click",
		Tones: []Tone{{
			StartHz:    800,
			EndHz:      400,
			Wave:       WaveSine,
			DurationMS: 80,
			Gain:       0.05,
		}},
	}
}
