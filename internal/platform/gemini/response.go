package gemini

import (
	"fmt"

	"github.com/phrazzld/apprentice-kiosk/internal/generation"
	"google.golang.org/genai"
)

// responseFragments converts the first candidate of resp into ordered
// fragments. A response without candidates or content yields no fragments;
// a nil response or a blocked prompt is an error.
func responseFragments(resp *genai.GenerateContentResponse) ([]generation.Fragment, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		return nil, fmt.Errorf("%w: %s", generation.ErrContentBlocked, fb.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return nil, nil
	}

	parts := resp.Candidates[0].Content.Parts
	fragments := make([]generation.Fragment, 0, len(parts))
	for _, part := range parts {
		switch {
		case part == nil:
			continue
		case part.Thought:
			// Draft images the model produced while reasoning.
			continue
		case part.InlineData != nil:
			fragments = append(fragments, generation.InlineImageFragment{
				MIMEType: part.InlineData.MIMEType,
				Data:     part.InlineData.Data,
			})
		case part.Text != "":
			fragments = append(fragments, generation.TextFragment{Text: part.Text})
		}
	}
	return fragments, nil
}
