package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lockshop/invoicer/internal/extract"
	"github.com/lockshop/invoicer/internal/parser"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestImportDirectory(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "aks.txt"),
		"American Key Supply\nCR-XHS-XNBU01EN Xhorse Wireless Flip Remote Key Buick Style 4 Buttons $12.59 4 $50.36\n")
	writeFile(t, filepath.Join(root, "nested", "empty.txt"), "nothing parseable here\n")
	writeFile(t, filepath.Join(root, "notes.md"), "not an invoice\n")
	writeFile(t, filepath.Join(root, ".hidden", "skipped.txt"), "hidden\n")

	im := NewImporter(extract.NewExtractor(extract.Config{}, nil), parser.New(nil), 2, nil)
	results, stats, err := im.ImportDirectory(context.Background(), root, true)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, uint32(2), stats.Matched)
	require.Equal(t, uint32(1), stats.Parsed)
	require.Equal(t, uint32(1), stats.Empty)
	require.Equal(t, uint32(0), stats.Failed)

	byPath := make(map[string]FileResult, len(results))
	for _, r := range results {
		byPath[filepath.Base(r.Path)] = r
	}
	require.Equal(t, "americankeysupply.com", byPath["aks.txt"].Supplier)
	require.Equal(t, 1, byPath["aks.txt"].ItemCount)
	require.InDelta(t, 12.59*4, byPath["aks.txt"].TotalValue, 1e-9)
	require.Equal(t, 0, byPath["empty.txt"].ItemCount)
}

func TestImportDirectoryIncludesHiddenWhenAsked(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".drafts", "inv.txt"), "nothing\n")

	im := NewImporter(extract.NewExtractor(extract.Config{}, nil), parser.New(nil), 1, nil)
	_, stats, err := im.ImportDirectory(context.Background(), root, false)
	require.NoError(t, err)
	require.Equal(t, uint32(1), stats.Matched)
}

func TestImportDirectoryRequiresRoot(t *testing.T) {
	im := NewImporter(extract.NewExtractor(extract.Config{}, nil), parser.New(nil), 1, nil)
	_, _, err := im.ImportDirectory(context.Background(), "   ", true)
	require.Error(t, err)
}
