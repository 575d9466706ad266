package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hkshrestha01-debug/aistudyapp/internal/config"
	"github.com/hkshrestha01-debug/aistudyapp/internal/generation"
	"github.com/hkshrestha01-debug/aistudyapp/internal/redact"
)

// APIKeyEnvVar is the environment variable the API key is read from.
const APIKeyEnvVar = "OPENAI_API_KEY"

// serviceName labels remote errors returned by this client
const serviceName = "OpenAI API"

// maxLoggedBody bounds response bodies copied into log records
const maxLoggedBody = 512

// Client performs chat-completion requests against the OpenAI API.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// httpClient issues the requests; its idle connections are released by Close
	httpClient *http.Client

	apiKey   string
	model    string
	endpoint string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient makes the Client issue requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client from the LLM configuration. A missing API key is
// not an error here; Call reports it so the failure surfaces on first use.
func NewClient(cfg config.LLMConfig, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint cannot be empty", generation.ErrInvalidConfig)
	}

	// Without DisableCompression the transport adds Accept-Encoding: gzip.
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableCompression = true

	c := &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: cfg.Timeout, Transport: transport},
		apiKey:     cfg.OpenAIAPIKey,
		model:      cfg.Model,
		endpoint:   cfg.Endpoint,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Call sends prompt as a single user message and returns the raw response
// body. Errors are generation.ErrMissingCredential, generation.ErrTransport
// or a *generation.RemoteError for statuses outside [200, 300).
func (c *Client) Call(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: %s environment variable not set",
			generation.ErrMissingCredential, APIKeyEnvVar)
	}

	body, err := json.Marshal(ChatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", generation.ErrTransport, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	// An empty User-Agent suppresses the Go-http-client default.
	req.Header.Set("User-Agent", "")

	c.logger.DebugContext(ctx, "Making OpenAI API call",
		"model", c.model,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "OpenAI API call failed",
			"error", redact.Error(err))
		return "", fmt.Errorf("%w: %v", generation.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", generation.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "OpenAI API returned error status",
			"status", resp.StatusCode,
			"body", redact.Snippet(string(respBody), maxLoggedBody))
		return "", &generation.RemoteError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	c.logger.InfoContext(ctx, "OpenAI API call successful",
		"status", resp.StatusCode,
		"body_length", len(respBody),
		"duration_ms", time.Since(start).Milliseconds())

	return string(respBody), nil
}

// Complete implements generation.Completer: it calls the API and extracts the
// assistant content from the response envelope.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	raw, err := c.Call(ctx, prompt)
	if err != nil {
		return "", err
	}

	return ExtractContent(raw)
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
