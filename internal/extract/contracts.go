package extract

import (
	"context"
	"time"
)

// TextExtractor turns an invoice file into a single text blob. Implementations
// must return an error wrapping common.ErrExtractionFailed when the underlying
// tool fails; producing text with no recognizable items is not their concern.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "plain-text"
	Duration time.Duration
	Warnings []string
}
