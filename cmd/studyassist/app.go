package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hkshrestha01-debug/aistudyapp/internal/config"
	"github.com/hkshrestha01-debug/aistudyapp/internal/domain"
	"github.com/hkshrestha01-debug/aistudyapp/internal/generation"
	"github.com/hkshrestha01-debug/aistudyapp/internal/platform/gemini"
	"github.com/hkshrestha01-debug/aistudyapp/internal/platform/logger"
	"github.com/hkshrestha01-debug/aistudyapp/internal/platform/openai"
	"github.com/hkshrestha01-debug/aistudyapp/internal/source"
	"github.com/hkshrestha01-debug/aistudyapp/internal/viewer"
)

// completer is a generation.Completer holding resources released by Close.
type completer interface {
	generation.Completer
	io.Closer
}

// application holds the dependencies of a single run.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Generator

	// completer is closed when the run ends, on every path
	completer completer

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// run loads configuration, wires the application and executes one session.
func run(ctx context.Context, opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, stdin, stdout, stderr)
	if err != nil {
		return err
	}
	defer app.close()

	return app.run(ctx, opts.inputPath)
}

// loadConfig loads configuration and applies command-line overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.tui {
		cfg.Viewer.Mode = "tui"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newApplication(
	ctx context.Context,
	cfg *config.Config,
	stdin io.Reader,
	stdout, stderr io.Writer,
) (*application, error) {
	log, err := logger.Setup(cfg.Logging, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	log = log.With("run_id", uuid.NewString())

	log.InfoContext(ctx, "Configuration loaded",
		"provider", cfg.LLM.Provider,
		"viewer_mode", cfg.Viewer.Mode,
		"log_level", cfg.Logging.Level)

	c, err := newCompleter(ctx, cfg.LLM, log)
	if err != nil {
		return nil, err
	}

	pipelineOpts, err := promptOptions(cfg.LLM)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	pipeline, err := generation.NewPipeline(c, log, pipelineOpts...)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to create generation pipeline: %w", err)
	}

	return &application{
		config:    cfg,
		logger:    log,
		generator: pipeline,
		completer: c,
		in:        bufio.NewReader(stdin),
		out:       stdout,
		errOut:    stderr,
	}, nil
}

// newCompleter creates the client for the configured provider.
func newCompleter(ctx context.Context, cfg config.LLMConfig, log *slog.Logger) (completer, error) {
	switch cfg.Provider {
	case "gemini":
		c, err := gemini.NewCompleter(ctx, log, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini completer: %w", err)
		}
		return c, nil
	default:
		c, err := openai.NewClient(cfg, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return c, nil
	}
}

// promptOptions loads the configured prompt template overrides.
func promptOptions(cfg config.LLMConfig) ([]generation.PipelineOption, error) {
	var opts []generation.PipelineOption

	if cfg.SummaryPromptPath != "" {
		tmpl, err := generation.LoadPromptTemplate(cfg.SummaryPromptPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, generation.WithSummaryTemplate(tmpl))
	}

	if cfg.FlashcardPromptPath != "" {
		tmpl, err := generation.LoadPromptTemplate(cfg.FlashcardPromptPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, generation.WithFlashcardTemplate(tmpl))
	}

	return opts, nil
}

// run executes one session: choice, study text, summary, then flashcards.
func (a *application) run(ctx context.Context, inputPath string) error {
	c := readChoice(a.in, a.out)

	text, err := a.studyText(ctx, inputPath)
	switch {
	case errors.Is(err, errNoInput):
		fmt.Fprintln(a.errOut, "No input detected. Exiting.")
		return nil
	case errors.Is(err, errNoText):
		fmt.Fprintln(a.errOut, "No text entered. Exiting.")
		return nil
	case err != nil:
		return err
	}

	a.logger.InfoContext(ctx, "Study text received",
		"choice", int(c),
		"text_length", len(text))

	if c.wantsSummary() {
		summary, err := a.generator.Summarize(ctx, text)
		if err != nil {
			return err
		}
		renderSummary(a.out, summary)
	}

	if c.wantsFlashcards() {
		deck, err := a.generator.GenerateFlashcards(ctx, text)
		if err != nil {
			return err
		}
		return a.view(deck)
	}

	return nil
}

// studyText reads the study text from inputPath when set, otherwise from the
// paste protocol on stdin.
func (a *application) studyText(ctx context.Context, inputPath string) (string, error) {
	if inputPath == "" {
		return readStudyText(a.in, a.out)
	}

	doc, err := source.Load(inputPath)
	if err != nil {
		return "", err
	}

	a.logger.InfoContext(ctx, "Study text loaded from file",
		"file", doc.Name,
		"page_count", doc.PageCount)
	return doc.Text, nil
}

func (a *application) view(deck *domain.FlashcardDeck) error {
	if a.config.Viewer.Mode == "tui" {
		return viewer.RunTUI(deck, a.out)
	}

	viewer.Run(deck, a.in, a.out)
	return nil
}

// close releases the completer's resources.
func (a *application) close() {
	if err := a.completer.Close(); err != nil {
		a.logger.Warn("failed to close completer", "error", err)
	}
}
