package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g. STUDY_LLM_MODEL.
const EnvPrefix = "STUDY"

// Provider defaults
const (
	DefaultModel       = "gpt-4.1-mini"
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultEndpoint    = "https://api.openai.com/v1/chat/completions"
)

// Load reads configuration from defaults, the optional YAML file at
// configPath and environment variables, in increasing order of precedence.
// The provider keys are read from their conventional variables
// (OPENAI_API_KEY, GEMINI_API_KEY).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model", DefaultModel)
	v.SetDefault("llm.gemini_model", DefaultGeminiModel)
	v.SetDefault("llm.endpoint", DefaultEndpoint)
	v.SetDefault("llm.timeout", "0s")
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.summary_prompt_path", "")
	v.SetDefault("llm.flashcard_prompt_path", "")
	v.SetDefault("logging.level", "error")
	v.SetDefault("logging.format", "text")
	v.SetDefault("viewer.mode", "line")

	if configPath != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"llm.openai_api_key", "OPENAI_API_KEY"},
		{"llm.gemini_api_key", "GEMINI_API_KEY"},
	}
	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration cannot be nil")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}
