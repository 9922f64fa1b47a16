package kiosk

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/phrazzld/apprentice-kiosk/internal/service"
)

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = errors.New("session not found")

// Session is one visitor's card generation workspace.
type Session struct {
	ID          string
	CreatedAt   time.Time
	Coordinator *service.Coordinator
}

// CoordinatorFactory builds the coordinator owned by a new session.
type CoordinatorFactory func() (*service.Coordinator, error)

// SessionStore keeps sessions in memory and expires them after a period of
// inactivity. Expired sessions have their in-flight generation cancelled.
type SessionStore struct {
	cache          *cache.Cache
	ttl            time.Duration
	newCoordinator CoordinatorFactory
	logger         *slog.Logger
}

// NewSessionStore creates a store whose sessions live for ttl after their
// last access.
func NewSessionStore(ttl time.Duration, factory CoordinatorFactory, logger *slog.Logger) (*SessionStore, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}
	if factory == nil {
		return nil, errors.New("coordinator factory cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &SessionStore{
		cache:          cache.New(ttl, ttl/2),
		ttl:            ttl,
		newCoordinator: factory,
		logger:         logger.With(slog.String("component", "session_store")),
	}
	s.cache.OnEvicted(s.evicted)
	return s, nil
}

func (s *SessionStore) evicted(id string, v interface{}) {
	sess, ok := v.(*Session)
	if !ok {
		return
	}
	sess.Coordinator.Close()
	s.logger.Info("session closed",
		slog.String("session_id", id),
		slog.Duration("age", time.Since(sess.CreatedAt)))
}

// Create starts a new session.
func (s *SessionStore) Create() (*Session, error) {
	coord, err := s.newCoordinator()
	if err != nil {
		return nil, fmt.Errorf("failed to create coordinator: %w", err)
	}

	sess := &Session{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		Coordinator: coord,
	}
	if err := s.cache.Add(sess.ID, sess, cache.DefaultExpiration); err != nil {
		coord.Close()
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info("session created", slog.String("session_id", sess.ID))
	return sess, nil
}

// Get returns the session with id and extends its lifetime.
func (s *SessionStore) Get(id string) (*Session, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	sess := v.(*Session)
	s.cache.Set(id, sess, cache.DefaultExpiration)
	return sess, nil
}

// Delete ends the session with id, cancelling its in-flight generation.
func (s *SessionStore) Delete(id string) error {
	if _, ok := s.cache.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.cache.Delete(id)
	return nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	return s.cache.ItemCount()
}

// Close ends every session.
func (s *SessionStore) Close() {
	for id := range s.cache.Items() {
		s.cache.Delete(id)
	}
}
