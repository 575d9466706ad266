package config

import "time"

// Config holds all application configuration.
type Config struct {
	LLM     LLMConfig     `mapstructure:"llm" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	Viewer  ViewerConfig  `mapstructure:"viewer" validate:"required"`
}

// LLMConfig contains all LLM integration related settings.
// API keys are optional at load time; providers report a missing credential
// when a request is attempted.
type LLMConfig struct {
	Provider     string        `mapstructure:"provider" validate:"required,oneof=openai gemini"`
	OpenAIAPIKey string        `mapstructure:"openai_api_key"`
	GeminiAPIKey string        `mapstructure:"gemini_api_key"`
	Model        string        `mapstructure:"model" validate:"required"`
	GeminiModel  string        `mapstructure:"gemini_model" validate:"required"`
	Endpoint     string        `mapstructure:"endpoint" validate:"required,url"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gte=0"`

	// Optional text/template files overriding the built-in prompts
	SummaryPromptPath   string `mapstructure:"summary_prompt_path" validate:"omitempty,file"`
	FlashcardPromptPath string `mapstructure:"flashcard_prompt_path" validate:"omitempty,file"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// ViewerConfig selects how flashcards are browsed.
type ViewerConfig struct {
	Mode string `mapstructure:"mode" validate:"required,oneof=line tui"`
}
