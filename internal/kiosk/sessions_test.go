package kiosk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/apprentice-kiosk/internal/domain"
	"github.com/phrazzld/apprentice-kiosk/internal/generation"
	"github.com/phrazzld/apprentice-kiosk/internal/platform/logger"
	"github.com/phrazzld/apprentice-kiosk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingGenerator never returns until its context is cancelled.
type blockingGenerator struct {
	cancelled chan struct{}
}

func (g *blockingGenerator) GenerateImage(ctx context.Context, _ generation.Request) (*generation.Image, error) {
	<-ctx.Done()
	select {
	case g.cancelled <- struct{}{}:
	default:
	}
	return nil, ctx.Err()
}

func newTestStore(t *testing.T, ttl time.Duration, gen generation.ImageGenerator) *SessionStore {
	t.Helper()
	log, _ := logger.GetTestLogger(t)
	store, err := NewSessionStore(ttl, func() (*service.Coordinator, error) {
		return service.NewCoordinator(gen, log)
	}, log)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func TestNewSessionStore_Validation(t *testing.T) {
	factory := func() (*service.Coordinator, error) { return nil, nil }

	_, err := NewSessionStore(0, factory, nil)
	assert.Error(t, err)

	_, err = NewSessionStore(time.Minute, nil, nil)
	assert.Error(t, err)
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t, time.Minute, &blockingGenerator{cancelled: make(chan struct{}, 2)})

	a, err := store.Create()
	require.NoError(t, err)
	b, err := store.Create()
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a.Coordinator, b.Coordinator, "sessions are isolated")
	assert.Equal(t, 2, store.Len())

	got, err := store.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_FactoryError(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	boom := errors.New("boom")
	store, err := NewSessionStore(time.Minute, func() (*service.Coordinator, error) {
		return nil, boom
	}, log)
	require.NoError(t, err)

	_, err = store.Create()
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, store.Len())
}

func TestSessionStore_DeleteCancelsGeneration(t *testing.T) {
	gen := &blockingGenerator{cancelled: make(chan struct{}, 2)}
	store := newTestStore(t, time.Minute, gen)

	sess, err := store.Create()
	require.NoError(t, err)
	option, err := domain.FindDesignOption("classic")
	require.NoError(t, err)
	_, err = sess.Coordinator.Start(context.Background(), option)
	require.NoError(t, err)

	require.NoError(t, store.Delete(sess.ID))

	select {
	case <-gen.cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("in-flight generation was not cancelled")
	}

	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(sess.ID), ErrSessionNotFound)

	_, err = sess.Coordinator.Start(context.Background(), option)
	assert.ErrorIs(t, err, service.ErrCoordinatorClosed)
}

func TestSessionStore_Expiry(t *testing.T) {
	gen := &blockingGenerator{cancelled: make(chan struct{}, 2)}
	store := newTestStore(t, 40*time.Millisecond, gen)

	sess, err := store.Create()
	require.NoError(t, err)
	option, err := domain.FindDesignOption("futurist")
	require.NoError(t, err)
	_, err = sess.Coordinator.Start(context.Background(), option)
	require.NoError(t, err)

	select {
	case <-gen.cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("expired session did not cancel its generation")
	}

	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
