package docquiz

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no OpenAI API key is configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY environment variable is required")

// Config holds process configuration loaded from an optional config file
// and environment variables.
type Config struct {
	Port         int    `mapstructure:"port"`         // webserver listen port
	Model        string `mapstructure:"model"`        // OpenAI model, empty selects the default
	RunLogDir    string `mapstructure:"run_log_dir"`  // pipeline diagnostics logs, empty disables
	OpenAIAPIKey string `mapstructure:"-"`            // loaded from environment only
	SessionKey   string `mapstructure:"-"`            // cookie signing key, loaded from environment
}

// LoadConfig reads configuration from config.yaml (if present) and the
// environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("port", 8180)
	v.SetDefault("model", "")
	v.SetDefault("run_log_dir", "")

	v.AutomaticEnv()
	_ = v.BindEnv("openai_api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("session_key", "SESSION_KEY")
	_ = v.BindEnv("model", "OPENAI_MODEL")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("run_log_dir", "RUN_LOG_DIR")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.OpenAIAPIKey = v.GetString("openai_api_key")
	if cfg.OpenAIAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg.SessionKey = v.GetString("session_key")
	if cfg.SessionKey == "" {
		cfg.SessionKey = "docquiz-dev-session-key"
	}

	return &cfg, nil
}
