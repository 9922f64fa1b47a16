package service

import (
	"context"
	"sync"

	"github.com/phrazzld/apprentice-kiosk/internal/generation"
	"github.com/stretchr/testify/mock"
)

// MockImageGenerator mocks the generation.ImageGenerator interface
type MockImageGenerator struct {
	mock.Mock
}

func (m *MockImageGenerator) GenerateImage(ctx context.Context, req generation.Request) (*generation.Image, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generation.Image), args.Error(1)
}

// funcGenerator is an ImageGenerator driven by a function, for tests that
// need to block, observe cancellation or vary behaviour per prompt.
type funcGenerator struct {
	mu       sync.Mutex
	requests []generation.Request
	finished sync.WaitGroup

	GenerateImageFn func(ctx context.Context, req generation.Request) (*generation.Image, error)
}

func (f *funcGenerator) GenerateImage(ctx context.Context, req generation.Request) (*generation.Image, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.GenerateImageFn(ctx, req)
}

func (f *funcGenerator) calls() []generation.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]generation.Request, len(f.requests))
	copy(out, f.requests)
	return out
}

func pngImage(data string) *generation.Image {
	return &generation.Image{MIMEType: "image/png", Data: []byte(data)}
}
