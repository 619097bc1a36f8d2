// parsetext is an operator tool: parse one invoice file (.pdf or .txt) and
// print the structured result as JSON. No database involved.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/lockshop/invoicer/internal/extract"
	"github.com/lockshop/invoicer/internal/parser"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "parsetext <invoice.pdf|invoice.txt>")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext: os.Getenv("PDFTOTEXT_BIN"),
	}, logger)
	res, err := extractor.Extract(ctx, os.Args[1])
	if err != nil {
		logger.Error("extraction failed", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	result := parser.New(logger).Parse(res.Text)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Supplier   string      `json:"supplier"`
		TotalItems int         `json:"total_items"`
		TotalValue float64     `json:"total_value"`
		Items      interface{} `json:"items"`
	}{
		Supplier:   result.Supplier.String(),
		TotalItems: len(result.Items),
		TotalValue: result.TotalValue(),
		Items:      result.Items,
	}); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
