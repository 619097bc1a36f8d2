// importdir walks a directory of supplier invoices (.pdf/.txt), parses each
// one, and prints a JSON summary. Useful for backfilling a quarter's worth of
// invoices before reviewing them in the UI.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lockshop/invoicer/internal/extract"
	"github.com/lockshop/invoicer/internal/ingest"
	"github.com/lockshop/invoicer/internal/parser"
)

func main() {
	workers := flag.Int("workers", 4, "concurrent files")
	skipHidden := flag.Bool("skip-hidden", true, "skip hidden files and directories")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "importdir [-workers N] <dir>")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext: os.Getenv("PDFTOTEXT_BIN"),
	}, logger)
	importer := ingest.NewImporter(extractor, parser.New(logger), *workers, logger)

	results, stats, err := importer.ImportDirectory(ctx, flag.Arg(0), *skipHidden)
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Stats   ingest.DirStats     `json:"stats"`
		Results []ingest.FileResult `json:"results"`
	}{stats, results}); err != nil {
		logger.Error("encode summary", "error", err)
		os.Exit(1)
	}
}
