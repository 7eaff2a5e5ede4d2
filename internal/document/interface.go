package document

import (
	"context"

	"gantt-chart-generator/pkg/log"
)

// Reader loads reference documents from disk as plain text.
type Reader interface {
	// ReadAll reads paths concurrently and returns their text in input order.
	// Files that cannot be read are reported in Result.Warnings and skipped;
	// the error is non-nil only when ctx is done.
	ReadAll(ctx context.Context, paths []string) (Result, error)
}

// New returns a Reader.
func New(l log.Logger, cfg Config) Reader {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &implReader{l: l, cfg: cfg}
}
