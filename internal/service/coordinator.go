package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/apprentice-kiosk/internal/domain"
	"github.com/phrazzld/apprentice-kiosk/internal/generation"
	"github.com/phrazzld/apprentice-kiosk/internal/platform/logger"
	"github.com/phrazzld/apprentice-kiosk/internal/redact"
)

// slot holds the state of one card side. Every field is guarded by mu.
type slot struct {
	mu     sync.Mutex
	state  domain.SideState
	cancel context.CancelFunc
}

// begin cancels any in-flight call, moves the slot to Loading under a fresh
// epoch and returns the context the new call must run under.
func (s *slot) begin(parent context.Context, now time.Time) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.state.Epoch++
	s.state.Phase = domain.PhaseLoading
	s.state.Image = nil
	s.state.Error = ""
	s.state.UpdatedAt = now

	return ctx, s.state.Epoch
}

// commit applies next if epoch is still current and its call is still
// outstanding. It reports whether the result was applied.
func (s *slot) commit(epoch uint64, next domain.SideState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Epoch != epoch || s.cancel == nil {
		return false
	}

	s.cancel()
	s.cancel = nil
	next.Side = s.state.Side
	next.Epoch = epoch
	s.state = next
	return true
}

// abort cancels the in-flight call, if any, and returns the slot to Idle.
func (s *slot) abort(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	s.state.Phase = domain.PhaseIdle
	s.state.UpdatedAt = now
}

func (s *slot) snapshot() domain.SideState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Coordinator runs the Front and Back generations for one design option.
// All methods are safe for concurrent use.
type Coordinator struct {
	generator generation.ImageGenerator
	logger    *slog.Logger
	now       func() time.Time

	// mu guards design and closed, and serialises Start/Regenerate so a
	// side's prompt always matches the design it was issued for.
	mu     sync.Mutex
	design *domain.DesignOption
	closed bool

	front *slot
	back  *slot

	// changed is closed and replaced whenever a side commits.
	changedMu sync.Mutex
	changed   chan struct{}
}

// NewCoordinator creates a Coordinator with both sides Idle.
// It returns an error if generator is nil.
func NewCoordinator(generator generation.ImageGenerator, logger *slog.Logger) (*Coordinator, error) {
	if generator == nil {
		return nil, domain.NewValidationError("generator", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Coordinator{
		generator: generator,
		logger:    logger.With(slog.String("component", "generation_coordinator")),
		now:       time.Now,
		front:     &slot{state: domain.SideState{Side: domain.SideFront, Phase: domain.PhaseIdle}},
		back:      &slot{state: domain.SideState{Side: domain.SideBack, Phase: domain.PhaseIdle}},
		changed:   make(chan struct{}),
	}, nil
}

func (c *Coordinator) slot(side domain.Side) *slot {
	if side == domain.SideBack {
		return c.back
	}
	return c.front
}

// Start selects option and issues the Front and Back calls concurrently.
// Calls still running for a previous selection are cancelled and their
// results discarded. Start does not wait for either call; in the returned
// snapshot each side is Loading or, with a fast generator, already settled.
//
// The calls outlive ctx's cancellation but keep its values, so a request
// context can be passed directly.
func (c *Coordinator) Start(ctx context.Context, option domain.DesignOption) (domain.CardState, error) {
	if err := option.Validate(); err != nil {
		return domain.CardState{}, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.CardState{}, ErrCoordinatorClosed
	}

	c.design = &option
	for _, side := range domain.Sides {
		prompt, _ := option.Prompt(side)
		c.launch(ctx, side, option.ID, prompt)
	}
	c.mu.Unlock()

	logger.FromContextOrDefault(ctx, c.logger).InfoContext(ctx, "card generation started",
		slog.String("design_id", option.ID))

	return c.Snapshot(), nil
}

// Regenerate restarts side for the currently selected option. The other
// side is left untouched.
func (c *Coordinator) Regenerate(ctx context.Context, side domain.Side) (domain.CardState, error) {
	if !side.IsValid() {
		return domain.CardState{}, fmt.Errorf("%w: %q", domain.ErrInvalidSide, side)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.CardState{}, ErrCoordinatorClosed
	}
	if c.design == nil {
		c.mu.Unlock()
		return domain.CardState{}, ErrNoDesignSelected
	}

	prompt, err := c.design.Prompt(side)
	if err != nil {
		c.mu.Unlock()
		return domain.CardState{}, err
	}
	c.launch(ctx, side, c.design.ID, prompt)
	c.mu.Unlock()

	logger.FromContextOrDefault(ctx, c.logger).InfoContext(ctx, "card side regeneration started",
		slog.String("side", string(side)))

	return c.Snapshot(), nil
}

// launch must be called with c.mu held.
func (c *Coordinator) launch(ctx context.Context, side domain.Side, designID, prompt string) {
	s := c.slot(side)
	callCtx, epoch := s.begin(context.WithoutCancel(ctx), c.now())
	c.notify()

	log := logger.FromContextOrDefault(ctx, c.logger).With(
		slog.String("side", string(side)),
		slog.String("design_id", designID),
		slog.Uint64("epoch", epoch),
	)

	go c.run(callCtx, log, s, side, epoch, prompt)
}

// run performs one call and commits its outcome if it is still current.
func (c *Coordinator) run(ctx context.Context, log *slog.Logger, s *slot, side domain.Side, epoch uint64, prompt string) {
	next := domain.SideState{}

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "image generator panicked", slog.Any("panic", r))
			next = domain.SideState{
				Phase:     domain.PhaseFailed,
				Error:     generation.ErrGenerationFailed.Error(),
				UpdatedAt: c.now(),
			}
		}
		if !s.commit(epoch, next) {
			log.DebugContext(ctx, "discarding stale generation result")
			return
		}
		log.InfoContext(ctx, "card side settled", slog.String("phase", string(next.Phase)))
		c.notify()
	}()

	img, err := c.generator.GenerateImage(ctx, generation.NewRequest(prompt))
	next.UpdatedAt = c.now()

	switch {
	case err != nil:
		next.Phase = domain.PhaseFailed
		next.Error = redact.Error(err)
		if !errors.Is(err, context.Canceled) {
			log.WarnContext(ctx, "card side generation failed", slog.String("error", next.Error))
		}
	case img == nil:
		next.Phase = domain.PhaseEmpty
	default:
		next.Phase = domain.PhaseSucceeded
		mimeType := img.MIMEType
		if mimeType == "" {
			mimeType = generation.DefaultMIMEType
		}
		next.Image = &domain.GeneratedImage{
			Side:     side,
			URL:      img.DataURI(),
			MIMEType: mimeType,
			Filename: side.FilenameFor(mimeType),
			Data:     img.Data,
		}
	}
}

func (c *Coordinator) notify() {
	c.changedMu.Lock()
	close(c.changed)
	c.changed = make(chan struct{})
	c.changedMu.Unlock()
}

func (c *Coordinator) changes() <-chan struct{} {
	c.changedMu.Lock()
	defer c.changedMu.Unlock()
	return c.changed
}

// Snapshot returns the current state of both sides.
func (c *Coordinator) Snapshot() domain.CardState {
	c.mu.Lock()
	designID := ""
	if c.design != nil {
		designID = c.design.ID
	}
	c.mu.Unlock()

	return domain.CardState{
		DesignID: designID,
		Front:    c.front.snapshot(),
		Back:     c.back.snapshot(),
	}
}

// State returns the current state of side.
func (c *Coordinator) State(side domain.Side) (domain.SideState, error) {
	if !side.IsValid() {
		return domain.SideState{}, fmt.Errorf("%w: %q", domain.ErrInvalidSide, side)
	}
	return c.slot(side).snapshot(), nil
}

// Image returns the generated image for side, or domain.ErrNoImage when the
// side has not succeeded.
func (c *Coordinator) Image(side domain.Side) (*domain.GeneratedImage, error) {
	state, err := c.State(side)
	if err != nil {
		return nil, err
	}
	if state.Phase != domain.PhaseSucceeded || state.Image == nil {
		return nil, fmt.Errorf("%w: %s is %s", domain.ErrNoImage, side, state.Phase)
	}
	return state.Image, nil
}

// Wait blocks until neither side is Loading or ctx is done.
func (c *Coordinator) Wait(ctx context.Context) (domain.CardState, error) {
	for {
		changed := c.changes()
		state := c.Snapshot()
		if state.Settled() {
			return state, nil
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return state, ctx.Err()
		}
	}
}

// Close cancels any in-flight calls. Later calls to Start and Regenerate
// return ErrCoordinatorClosed.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	now := c.now()
	c.front.abort(now)
	c.back.abort(now)
	c.notify()
}
