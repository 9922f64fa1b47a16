package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Kiosk  KioskConfig  `mapstructure:"kiosk"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// LLMConfig contains the generative-image service settings.
type LLMConfig struct {
	// GeminiAPIKey is the only secret the application needs.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// ImageModel is the Gemini model that produces the card images.
	ImageModel string `mapstructure:"image_model" validate:"required"`

	// RequestTimeoutSeconds bounds a single image generation call.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gt=0"`
}

// KioskConfig contains settings for the kiosk flow and its sessions.
type KioskConfig struct {
	// PublicBaseURL overrides the URL encoded into the QR code. When empty
	// the base URL is derived from the incoming request.
	PublicBaseURL string `mapstructure:"public_base_url" validate:"omitempty,url"`

	// QRServiceURL is the endpoint of the external QR rendering service.
	QRServiceURL string `mapstructure:"qr_service_url" validate:"required,url"`

	// SessionTTLMinutes is how long an idle kiosk session keeps its cards.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" validate:"gt=0"`
}
