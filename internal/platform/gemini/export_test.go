package gemini

import (
	"context"

	"google.golang.org/genai"
)

// CandidateText exposes candidateText to external tests.
var CandidateText = candidateText

// SetGenerateFunc replaces the genai request function.
func (c *Completer) SetGenerateFunc(fn func(ctx context.Context, model string, contents []*genai.Content) (*genai.GenerateContentResponse, error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generate = fn
}
