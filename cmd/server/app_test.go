package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/apprentice-kiosk/internal/api"
	"github.com/phrazzld/apprentice-kiosk/internal/config"
	"github.com/phrazzld/apprentice-kiosk/internal/domain"
	"github.com/phrazzld/apprentice-kiosk/internal/generation"
	"github.com/phrazzld/apprentice-kiosk/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct{}

func (stubGenerator) GenerateImage(_ context.Context, req generation.Request) (*generation.Image, error) {
	return &generation.Image{MIMEType: "image/png", Data: []byte(req.Prompt[:1])}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info", ShutdownTimeoutSeconds: 1},
		LLM: config.LLMConfig{
			GeminiAPIKey:          "test-key",
			ImageModel:            "gemini-3-pro-image-preview",
			RequestTimeoutSeconds: 5,
		},
		Kiosk: config.KioskConfig{
			QRServiceURL:      "https://quickchart.io/qr",
			SessionTTLMinutes: 30,
		},
	}
}

func newTestApp(t *testing.T) *application {
	t.Helper()
	log, _ := logger.GetTestLogger(t)
	app, err := newApplicationWithGenerator(testConfig(), log, stubGenerator{})
	require.NoError(t, err)
	t.Cleanup(app.cleanup)
	return app
}

func TestNewApplication_RequiresAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.GeminiAPIKey = ""
	log, _ := logger.GetTestLogger(t)

	_, err := newApplication(context.Background(), cfg, log)

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestRouter_EndToEnd(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	resp, err = http.Post(srv.URL+"/api/sessions", "application/json", nil)
	require.NoError(t, err)
	var sess api.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sess))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/sessions/"+sess.SessionID+"/generations",
		"application/json", strings.NewReader(`{"design_id":"classic"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var state domain.CardState
	require.Eventually(t, func() bool {
		r, err := http.Get(srv.URL + "/api/sessions/" + sess.SessionID + "/generations")
		if err != nil {
			return false
		}
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
			return false
		}
		return state.Settled()
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, domain.PhaseSucceeded, state.Front.Phase)
	assert.Equal(t, domain.PhaseSucceeded, state.Back.Phase)

	resp, err = http.Get(srv.URL + "/api/sessions/" + sess.SessionID + "/images/back")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="card-back.png"`, resp.Header.Get("Content-Disposition"))

	resp, err = http.Get(srv.URL + "/?s=1")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServe_GracefulShutdown(t *testing.T) {
	app := newTestApp(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	server := &http.Server{Handler: app.setupRouter()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.serve(ctx, server, func() error { return server.Serve(ln) })
	}()

	url := fmt.Sprintf("http://%s/health", ln.Addr())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Zero(t, app.sessions.Len(), "sessions are closed on shutdown")
}

func TestServe_ListenFailure(t *testing.T) {
	app := newTestApp(t)
	server := &http.Server{}
	boom := errors.New("address already in use")

	err := app.serve(context.Background(), server, func() error { return boom })

	assert.ErrorIs(t, err, boom)
}

func TestInitializeApp(t *testing.T) {
	for _, key := range []string{"KIOSK_LLM_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY", "KIOSK_CONFIG_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	t.Run("missing key fails fast", func(t *testing.T) {
		_, err := initializeApp(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("dotenv supplies key", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("GEMINI_API_KEY=from-dotenv\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("GEMINI_API_KEY") })

		cfg, err := initializeApp(envFile)
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.LLM.GeminiAPIKey)
	})
}
