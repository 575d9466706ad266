package generation

import (
	"context"
	"errors"
	"log/slog"
	"text/template"

	"github.com/hkshrestha01-debug/aistudyapp/internal/domain"
)

// Generator defines the interface for producing study material from text.
// It is the boundary between the command-line front end and the LLM round
// trip.
type Generator interface {
	// Summarize returns a summary with key points and definitions for text.
	Summarize(ctx context.Context, text string) (*domain.SummaryResult, error)

	// GenerateFlashcards returns a deck of question/answer cards for text.
	GenerateFlashcards(ctx context.Context, text string) (*domain.FlashcardDeck, error)
}

// Completer performs a single prompt/response exchange with a language model
// and returns the assistant's textual content.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Pipeline implements Generator on top of any Completer:
// prompt template -> Completer -> ExtractJSON -> schema decoder.
type Pipeline struct {
	completer Completer
	logger    *slog.Logger

	summaryTemplate   *template.Template
	flashcardTemplate *template.Template
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithSummaryTemplate replaces the built-in summary prompt.
func WithSummaryTemplate(tmpl *template.Template) PipelineOption {
	return func(p *Pipeline) {
		p.summaryTemplate = tmpl
	}
}

// WithFlashcardTemplate replaces the built-in flashcard prompt.
func WithFlashcardTemplate(tmpl *template.Template) PipelineOption {
	return func(p *Pipeline) {
		p.flashcardTemplate = tmpl
	}
}

// NewPipeline creates a Pipeline that sends prompts through completer.
func NewPipeline(completer Completer, logger *slog.Logger, opts ...PipelineOption) (*Pipeline, error) {
	if completer == nil {
		return nil, errors.New("completer cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	p := &Pipeline{
		completer: completer,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Summarize implements Generator.
func (p *Pipeline) Summarize(ctx context.Context, text string) (*domain.SummaryResult, error) {
	content, err := p.roundTrip(ctx, "summary", p.summaryTemplate, SummaryPromptPrefix, text)
	if err != nil {
		return nil, err
	}

	result, err := DecodeSummary(content)
	if err != nil {
		p.logger.WarnContext(ctx, "Failed to decode summary", "error", err)
		return nil, err
	}

	p.logger.InfoContext(ctx, "Summary decoded",
		"key_points", len(result.KeyPoints),
		"definitions", len(result.Definitions))

	return result, nil
}

// GenerateFlashcards implements Generator.
func (p *Pipeline) GenerateFlashcards(ctx context.Context, text string) (*domain.FlashcardDeck, error) {
	content, err := p.roundTrip(ctx, "flashcards", p.flashcardTemplate, FlashcardPromptPrefix, text)
	if err != nil {
		return nil, err
	}

	deck, err := DecodeFlashcards(content)
	if err != nil {
		p.logger.WarnContext(ctx, "Failed to decode flashcards", "error", err)
		return nil, err
	}

	p.logger.InfoContext(ctx, "Flashcards decoded", "card_count", deck.Len())

	return deck, nil
}

func (p *Pipeline) roundTrip(
	ctx context.Context,
	kind string,
	tmpl *template.Template,
	prefix string,
	text string,
) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}

	prompt, err := renderPrompt(tmpl, prefix, text)
	if err != nil {
		return "", err
	}

	p.logger.DebugContext(ctx, "Prompt generated",
		"kind", kind,
		"text_length", len(text),
		"prompt_length", len(prompt),
		"custom_template", tmpl != nil)

	content, err := p.completer.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	p.logger.DebugContext(ctx, "Assistant content received",
		"kind", kind,
		"content_length", len(content))

	return content, nil
}
