package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lockshop/invoicer/internal/common"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, s.stderr, s.err
}

func TestExtractPDF(t *testing.T) {
	runner := &stubRunner{stdout: []byte("page one text\fpage two text")}
	e := NewExtractor(Config{}, nil)
	e.runner = runner

	res, err := e.Extract(context.Background(), "/invoices/order-1042.pdf")
	require.NoError(t, err)
	require.Equal(t, "page one text\fpage two text", res.Text)
	require.Equal(t, 2, res.Pages)
	require.Equal(t, "pdf-text", res.Method)
	require.Empty(t, res.Warnings)

	require.Equal(t, "pdftotext", runner.gotName)
	require.Equal(t, []string{"-layout", "-enc", "UTF-8", "-eol", "unix", "/invoices/order-1042.pdf", "-"}, runner.gotArgs)
}

func TestExtractPDFCommandFailure(t *testing.T) {
	runner := &stubRunner{stderr: []byte("Syntax Error: couldn't read xref table"), err: errors.New("exit status 1")}
	e := NewExtractor(Config{}, nil)
	e.runner = runner

	res, err := e.Extract(context.Background(), "broken.pdf")
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrExtractionFailed)
	require.Contains(t, res.Warnings[0], "xref table")
}

func TestExtractPDFEmptyTextLayer(t *testing.T) {
	runner := &stubRunner{stdout: []byte("  \n \f \n")}
	e := NewExtractor(Config{}, nil)
	e.runner = runner

	res, err := e.Extract(context.Background(), "scan.pdf")
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	require.Contains(t, res.Warnings[0], "no text layer")
}

func TestExtractPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.txt")
	require.NoError(t, os.WriteFile(path, []byte("SKU: RS-FRD-3B\nx3\n"), 0o644))

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "SKU: RS-FRD-3B\nx3\n", res.Text)
	require.Equal(t, 1, res.Pages)
	require.Equal(t, "plain-text", res.Method)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), "invoice.docx")
	require.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestExtractMissingPlainFile(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, common.ErrExtractionFailed)
}
