package usecase

import (
	"gantt-chart-generator/internal/gantt"
	pkgLog "gantt-chart-generator/pkg/log"
)

// Config tunes the generation pipeline.
type Config struct {
	// Reconcile enables the interval corrector after validation.
	Reconcile   bool
	Temperature float64
	MaxTokens   int
}

type implUseCase struct {
	l   pkgLog.Logger
	llm gantt.LLM
	cfg Config
}

// New creates a new gantt UseCase instance.
func New(l pkgLog.Logger, llm gantt.LLM, cfg Config) gantt.UseCase {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	return &implUseCase{
		l:   l,
		llm: llm,
		cfg: cfg,
	}
}
