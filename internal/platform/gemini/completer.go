package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/hkshrestha01-debug/aistudyapp/internal/config"
	"github.com/hkshrestha01-debug/aistudyapp/internal/generation"
	"github.com/hkshrestha01-debug/aistudyapp/internal/redact"
	"google.golang.org/genai"
)

// APIKeyEnvVar is the environment variable the API key is read from.
const APIKeyEnvVar = "GEMINI_API_KEY"

// generateFunc performs a single GenerateContent request.
type generateFunc func(ctx context.Context, model string, contents []*genai.Content) (*genai.GenerateContentResponse, error)

// Completer implements generation.Completer using the Gemini API.
type Completer struct {
	// logger is used for structured logging
	logger *slog.Logger

	apiKey  string
	model   string
	timeout time.Duration

	mu       sync.Mutex
	generate generateFunc
}

// NewCompleter creates a Completer from the LLM configuration.
func NewCompleter(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Completer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	return &Completer{
		logger:  logger,
		apiKey:  cfg.GeminiAPIKey,
		model:   cfg.GeminiModel,
		timeout: cfg.Timeout,
	}, nil
}

// generator returns the request function, creating the genai client on first use.
func (c *Completer) generator(ctx context.Context) (generateFunc, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generate != nil {
		return c.generate, nil
	}

	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: %s environment variable not set",
			generation.ErrMissingCredential, APIKeyEnvVar)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	c.generate = func(ctx context.Context, model string, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
		return client.Models.GenerateContent(ctx, model, contents, nil)
	}
	return c.generate, nil
}

// Complete sends prompt as a single user turn and returns the text of the
// first candidate.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	generate, err := c.generator(ctx)
	if err != nil {
		return "", err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	c.logger.DebugContext(ctx, "Making Gemini API call",
		"model", c.model,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := generate(ctx, c.model, contents)
	if err != nil {
		c.logger.WarnContext(ctx, "Gemini API call failed",
			"error", redact.Error(err))
		return "", fmt.Errorf("%w: %v", generation.ErrTransport, err)
	}

	text, err := candidateText(resp)
	if err != nil {
		return "", err
	}

	c.logger.InfoContext(ctx, "Gemini API call successful",
		"content_length", len(text),
		"duration_ms", time.Since(start).Milliseconds())

	return text, nil
}

// Close is a no-op; the genai client holds no resources that need releasing.
func (c *Completer) Close() error {
	return nil
}

// candidateText concatenates the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrMalformedResponse)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrMalformedResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrMalformedResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
