// Package ingest batch-imports invoice files from a directory tree.
package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lockshop/invoicer/constants"
	"github.com/lockshop/invoicer/internal/extract"
	"github.com/lockshop/invoicer/internal/parser"
)

// FileResult is the parse outcome for one file in a directory import.
type FileResult struct {
	Path       string  `json:"path"`
	Supplier   string  `json:"supplier"`
	ItemCount  int     `json:"item_count"`
	TotalValue float64 `json:"total_value"`
	Err        string  `json:"error,omitempty"`
}

type DirStats struct {
	Scanned uint32 `json:"scanned"`
	Matched uint32 `json:"matched"`
	Parsed  uint32 `json:"parsed"`
	Empty   uint32 `json:"empty"`
	Failed  uint32 `json:"failed"`
}

// Importer walks a directory and parses every invoice file it finds. Parsing
// is stateless, so files are processed concurrently up to Workers.
type Importer struct {
	extractor extract.TextExtractor
	parser    *parser.Parser
	logger    *slog.Logger
	workers   int
}

func NewImporter(ex extract.TextExtractor, p *parser.Parser, workers int, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 4
	}
	return &Importer{extractor: ex, parser: p, logger: logger, workers: workers}
}

// ImportDirectory walks root, filters to supported invoice extensions, skips
// hidden entries if requested, and parses each match. Per-file failures are
// reported in the results, never as a walk abort.
func (im *Importer) ImportDirectory(ctx context.Context, root string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var stats DirStats
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			im.logger.Warn("walk error", "path", path, "error", walkErr)
			return nil // continue walking
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	results := make([]FileResult, len(paths))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.workers)
	for i, path := range paths {
		g.Go(func() error {
			res := im.importOne(gctx, path)
			mu.Lock()
			switch {
			case res.Err != "":
				stats.Failed++
			case res.ItemCount == 0:
				stats.Empty++
			default:
				stats.Parsed++
			}
			mu.Unlock()
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, stats, err
	}
	return results, stats, nil
}

func (im *Importer) importOne(ctx context.Context, path string) FileResult {
	ext, err := im.extractor.Extract(ctx, path)
	if err != nil {
		return FileResult{Path: path, Err: err.Error()}
	}
	parsed := im.parser.Parse(ext.Text)
	return FileResult{
		Path:       path,
		Supplier:   parsed.Supplier.String(),
		ItemCount:  len(parsed.Items),
		TotalValue: parsed.TotalValue(),
	}
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
