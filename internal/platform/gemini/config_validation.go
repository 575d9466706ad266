package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hkshrestha01-debug/aistudyapp/internal/config"
	"github.com/hkshrestha01-debug/aistudyapp/internal/generation"
)

// validateConfig checks the settings the completer needs before any request is
// attempted. The API key is checked on the first request.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiModel == "" {
		logger.ErrorContext(ctx, "Missing Gemini model name",
			"error", "GeminiModel is empty")
		return fmt.Errorf("%w: gemini model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative", generation.ErrInvalidConfig)
	}

	logger.DebugContext(ctx, "Gemini configuration validated",
		"model", cfg.GeminiModel)
	return nil
}
