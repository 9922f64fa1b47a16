package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. KIOSK_SERVER_PORT for server.port.
const EnvPrefix = "KIOSK"

// ConfigFileEnv names an explicit config file to read instead of searching
// the default locations.
const ConfigFileEnv = "KIOSK_CONFIG_FILE"

// Default values applied before any file or environment override.
const (
	DefaultPort                   = 8080
	DefaultLogLevel               = "info"
	DefaultShutdownTimeoutSeconds = 10
	DefaultImageModel             = "gemini-3-pro-image-preview"
	DefaultRequestTimeoutSeconds  = 90
	DefaultQRServiceURL           = "https://quickchart.io/qr"
	DefaultSessionTTLMinutes      = 30
)

// ErrInvalidConfig is returned when configuration cannot be loaded or fails
// validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// 1. Defaults
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.shutdown_timeout_seconds", DefaultShutdownTimeoutSeconds)
	v.SetDefault("llm.image_model", DefaultImageModel)
	v.SetDefault("llm.request_timeout_seconds", DefaultRequestTimeoutSeconds)
	v.SetDefault("kiosk.public_base_url", "")
	v.SetDefault("kiosk.qr_service_url", DefaultQRServiceURL)
	v.SetDefault("kiosk.session_ttl_minutes", DefaultSessionTTLMinutes)

	// 2. Optional config file
	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	// 3. Environment variables with KIOSK_ prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential has no default, so AutomaticEnv alone would never see
	// it during Unmarshal. The bare names are what hosted notebooks inject.
	if err := v.BindEnv("llm.gemini_api_key", "KIOSK_LLM_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return nil, fmt.Errorf("%w: failed to bind API key variable: %v", ErrInvalidConfig, err)
	}

	// 4. Unmarshal
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal configuration: %v", ErrInvalidConfig, err)
	}

	// 5. Validate
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: configuration validation failed: %v", ErrInvalidConfig, err)
	}
	return nil
}

func readConfigFile(v *viper.Viper) error {
	explicit := strings.TrimSpace(os.Getenv(ConfigFileEnv))
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("%w: failed to read config file %s: %v", ErrInvalidConfig, explicit, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.apprentice-kiosk")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("%w: failed to read config file: %v", ErrInvalidConfig, err)
	}
	return nil
}
