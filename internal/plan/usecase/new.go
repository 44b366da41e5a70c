package usecase

import (
	"context"

	"ai-tasker/internal/decode"
	"ai-tasker/internal/plan/repository"
	"ai-tasker/pkg/llmprovider"
	pkgLog "ai-tasker/pkg/log"
)

const (
	defaultQuestionCount = 5
	maxQuestionCount     = 10
	defaultTemperature   = 0.7
	defaultStyle         = "balanced"
)

// Completer sends one chat-completion request. *llmprovider.Manager satisfies it.
type Completer interface {
	Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config holds the prompt settings passed to every request.
// A zero Temperature is sent as is; only a negative one falls back to the default.
type Config struct {
	Style         string
	Temperature   float64
	MaxTokens     int
	QuestionCount int
	JSONMode      bool
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      Completer
	decoder  *decode.Decoder
	repo     repository.Repository
	exporter repository.Sink
	cfg      Config
}

// New creates a new plan UseCase instance. exporter may be nil.
func New(
	l pkgLog.Logger,
	llm Completer,
	decoder *decode.Decoder,
	repo repository.Repository,
	exporter repository.Sink,
	cfg Config,
) *implUseCase {
	if cfg.QuestionCount <= 0 {
		cfg.QuestionCount = defaultQuestionCount
	}
	if cfg.Temperature < 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.Style == "" {
		cfg.Style = defaultStyle
	}
	if decoder == nil {
		decoder = decode.New()
	}
	return &implUseCase{
		l:        l,
		llm:      llm,
		decoder:  decoder,
		repo:     repo,
		exporter: exporter,
		cfg:      cfg,
	}
}
