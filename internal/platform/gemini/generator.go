package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/apprentice-kiosk/internal/config"
	"github.com/phrazzld/apprentice-kiosk/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the slice of the genai client the adapter needs.
// *genai.Models satisfies it; tests substitute a stub.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// ImageGenerator implements generation.ImageGenerator using Gemini image models.
type ImageGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models performs the generateContent call
	models contentGenerator

	// model is the name of the Gemini image model to use
	model string

	// timeout bounds a single call
	timeout time.Duration
}

var _ generation.ImageGenerator = (*ImageGenerator)(nil)

// NewImageGenerator validates cfg and creates a Gemini-backed ImageGenerator.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name and timeout
//
// Returns:
//   - A ready ImageGenerator, or an error wrapping generation.ErrInvalidConfig
func NewImageGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*ImageGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(cfg); err != nil {
		logger.ErrorContext(ctx, "Gemini configuration rejected", "error", err)
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	logger.InfoContext(ctx, "Gemini image generator initialized",
		"model", cfg.ImageModel,
		"timeout_seconds", cfg.RequestTimeoutSeconds)

	return newImageGenerator(logger, client.Models, cfg), nil
}

func newImageGenerator(logger *slog.Logger, models contentGenerator, cfg config.LLMConfig) *ImageGenerator {
	return &ImageGenerator{
		logger:  logger,
		models:  models,
		model:   cfg.ImageModel,
		timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}
}

// validateConfig rejects configuration the adapter cannot work with.
func validateConfig(cfg config.LLMConfig) error {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.ImageModel) == "" {
		return fmt.Errorf("%w: image model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", generation.ErrInvalidConfig)
	}
	return nil
}

// GenerateImage sends req to Gemini and returns the first inline image in
// the response, nil when the response holds no image, or an error wrapping
// generation.ErrGenerationFailed.
func (g *ImageGenerator) GenerateImage(ctx context.Context, req generation.Request) (*generation.Image, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("%w: %w", generation.ErrGenerationFailed, generation.ErrEmptyPrompt)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	g.logger.DebugContext(ctx, "Making Gemini image call",
		"model", g.model,
		"prompt_length", len(req.Prompt),
		"aspect_ratio", req.AspectRatio,
		"image_size", req.ImageSize)

	resp, err := g.models.GenerateContent(callCtx, g.model, genai.Text(req.Prompt), requestConfig(req))
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			err = fmt.Errorf("%w: %w: no response within %s: %w",
				generation.ErrGenerationFailed, generation.ErrTimeout, g.timeout, err)
		} else {
			err = fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
		}
		g.logger.ErrorContext(ctx, "Gemini image call failed",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	fragments, err := responseFragments(resp)
	if err != nil {
		err = fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
		g.logger.ErrorContext(ctx, "Gemini image response rejected", "error", err)
		return nil, err
	}

	img, ok := generation.FirstInlineImage(fragments)
	if !ok {
		g.logger.WarnContext(ctx, "Gemini response contained no image",
			"fragments", len(fragments),
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, nil
	}

	g.logger.InfoContext(ctx, "Gemini image call successful",
		"mime_type", img.MIMEType,
		"image_bytes", len(img.Data),
		"elapsed_ms", time.Since(start).Milliseconds())
	return img, nil
}

// requestConfig builds the per-call generation config.
func requestConfig(req generation.Request) *genai.GenerateContentConfig {
	aspect := req.AspectRatio
	if aspect == "" {
		aspect = generation.AspectRatioSquare
	}
	size := req.ImageSize
	if size == "" {
		size = generation.ImageSize1K
	}

	return &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityText), string(genai.ModalityImage)},
		ImageConfig: &genai.ImageConfig{
			AspectRatio: aspect,
			ImageSize:   size,
		},
	}
}
