package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is the umbrella for any failed call to the image
	// service. Every error an ImageGenerator returns from a call wraps it.
	ErrGenerationFailed = errors.New("image generation failed")

	// ErrEmptyPrompt is returned when a request carries no prompt text
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrInvalidResponse is returned when the service response is malformed
	ErrInvalidResponse = errors.New("invalid response from image model")

	// ErrContentBlocked is returned when the service refuses the prompt
	ErrContentBlocked = errors.New("prompt blocked by image model safety filters")

	// ErrTimeout is returned when the call does not finish within its deadline
	ErrTimeout = errors.New("image generation timed out")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
