package generation_test

import (
	"encoding/base64"
	"testing"

	"github.com/phrazzld/apprentice-kiosk/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstInlineImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fragments []generation.Fragment
		wantOK    bool
		wantData  string
		wantMIME  string
	}{
		{
			name:      "no_fragments",
			fragments: nil,
			wantOK:    false,
		},
		{
			name: "text_only",
			fragments: []generation.Fragment{
				generation.TextFragment{Text: "here is your card"},
			},
			wantOK: false,
		},
		{
			name: "text_then_image",
			fragments: []generation.Fragment{
				generation.TextFragment{Text: "here is your card"},
				generation.InlineImageFragment{MIMEType: "image/png", Data: []byte("X")},
			},
			wantOK:   true,
			wantData: "X",
			wantMIME: "image/png",
		},
		{
			name: "first_image_wins",
			fragments: []generation.Fragment{
				generation.InlineImageFragment{MIMEType: "image/png", Data: []byte("first")},
				generation.TextFragment{Text: "and another"},
				generation.InlineImageFragment{MIMEType: "image/jpeg", Data: []byte("second")},
			},
			wantOK:   true,
			wantData: "first",
			wantMIME: "image/png",
		},
		{
			name: "empty_inline_data_is_skipped",
			fragments: []generation.Fragment{
				generation.InlineImageFragment{MIMEType: "image/png"},
				generation.InlineImageFragment{MIMEType: "image/webp", Data: []byte("real")},
			},
			wantOK:   true,
			wantData: "real",
			wantMIME: "image/webp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			img, ok := generation.FirstInlineImage(tt.fragments)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, img)
				return
			}
			require.NotNil(t, img)
			assert.Equal(t, tt.wantData, string(img.Data))
			assert.Equal(t, tt.wantMIME, img.MIMEType)
		})
	}
}

func TestImage_DataURI(t *testing.T) {
	t.Parallel()

	payload := []byte{0x89, 'P', 'N', 'G'}
	encoded := base64.StdEncoding.EncodeToString(payload)

	img := &generation.Image{MIMEType: "image/png", Data: payload}
	assert.Equal(t, "data:image/png;base64,"+encoded, img.DataURI())

	unlabeled := &generation.Image{Data: payload}
	assert.Equal(t, "data:image/png;base64,"+encoded, unlabeled.DataURI())
}

func TestNewRequest_UsesFixedImagingParameters(t *testing.T) {
	t.Parallel()

	req := generation.NewRequest("a lighthouse")
	assert.Equal(t, "a lighthouse", req.Prompt)
	assert.Equal(t, "1:1", req.AspectRatio)
	assert.Equal(t, "1K", req.ImageSize)
}
