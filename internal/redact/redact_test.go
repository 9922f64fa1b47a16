package redact_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/phrazzld/apprentice-kiosk/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	googleKey := "AIza" + strings.Repeat("x", 35)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "image generation failed: no candidates returned",
			expected: "image generation failed: no candidates returned",
		},
		{
			name:     "google api key",
			input:    "request rejected for " + googleKey,
			expected: "request rejected for [REDACTED_KEY]",
		},
		{
			name:     "api key assignment",
			input:    "Using api_key=abcdef1234567890ghijklmnop for authentication",
			expected: "Using [REDACTED_KEY] for authentication",
		},
		{
			name:     "inline image data",
			input:    "bad payload data:image/png;base64,iVBORw0KGgo=",
			expected: "bad payload [REDACTED_IMAGE_DATA]",
		},
		{
			name:     "bearer token",
			input:    "Authorization: Bearer abc.def-ghi",
			expected: "Authorization: Bearer [REDACTED_CREDENTIAL]",
		},
		{
			name:     "email address",
			input:    "user jane@example.com failed",
			expected: "user [REDACTED_EMAIL] failed",
		},
		{
			name:     "file path",
			input:    "open /etc/kiosk/config.yaml: permission denied",
			expected: "open [REDACTED_PATH]: permission denied",
		},
		{
			name:     "host and port",
			input:    "dial tcp: lookup generativelanguage.googleapis.com:443: no such host",
			expected: "dial tcp: lookup [REDACTED_HOST]: no such host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, redact.String(tt.input))
		})
	}
}

func TestRedactString_RequestURLWithKey(t *testing.T) {
	input := `Post "https://generativelanguage.googleapis.com/v1beta/models/m:generateContent?key=abc123secret": context deadline exceeded`

	got := redact.String(input)

	assert.NotContains(t, got, "abc123secret")
	assert.NotContains(t, got, "googleapis.com")
	assert.Contains(t, got, "[REDACTED_KEY]")
	assert.Contains(t, got, "context deadline exceeded")
}

func TestRedactError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	base := errors.New("upstream said api_key=abcdef1234567890ghijklmnop")
	wrapped := fmt.Errorf("image generation failed: %w", base)

	got := redact.Error(wrapped)
	assert.Equal(t, "image generation failed: upstream said [REDACTED_KEY]", got)
}
