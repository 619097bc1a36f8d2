package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lockshop/invoicer/constants"
	"github.com/lockshop/invoicer/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Timeout   time.Duration
}

// Extractor shells out to pdftotext for PDFs and reads .txt files directly.
// OCR of scanned/image-only PDFs is out of scope; such files come back with an
// empty text blob and a warning.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)

	var res TextExtractionResult
	var err error
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err = e.extractPDF(ctx, path)
	case constants.TXT:
		res, err = e.extractPlain(path)
	default:
		return res, fmt.Errorf("%w: unsupported extension %q", common.ErrExtractionFailed, ext)
	}
	res.Duration = time.Since(start)
	return res, err
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (TextExtractionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return TextExtractionResult{Warnings: []string{string(errb)}},
			fmt.Errorf("%w: pdftotext: %v", common.ErrExtractionFailed, err)
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	res := TextExtractionResult{Text: text, Pages: pages, Method: "pdf-text"}
	if strings.TrimSpace(text) == "" {
		res.Warnings = append(res.Warnings, "pdf produced no text layer (scanned image?)")
	}
	return res, nil
}

func (e *Extractor) extractPlain(path string) (TextExtractionResult, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("%w: read %s: %v", common.ErrExtractionFailed, path, err)
	}
	return TextExtractionResult{Text: string(b), Pages: 1, Method: "plain-text"}, nil
}
