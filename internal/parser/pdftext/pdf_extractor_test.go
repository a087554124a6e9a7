package pdftext_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docval/internal/parser/pdftext"
)

// buildPDF assembles a single-page PDF whose content stream is content,
// with a correct cross-reference table.
func buildPDF(content string) []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestExtractText_Success(t *testing.T) {
	doc := buildPDF("BT /F1 12 Tf 72 712 Td (REGISTRO UNICO TRIBUTARIO) Tj ET")

	text, err := pdftext.NewExtractor().ExtractText(context.Background(), doc)

	require.NoError(t, err)
	assert.Contains(t, text, "REGISTRO UNICO TRIBUTARIO")
}

func TestExtractText_NoText(t *testing.T) {
	doc := buildPDF("0 0 m 100 100 l S")

	_, err := pdftext.NewExtractor().ExtractText(context.Background(), doc)

	assert.ErrorIs(t, err, pdftext.ErrNoText)
}

func TestExtractText_InvalidPDF(t *testing.T) {
	_, err := pdftext.NewExtractor().ExtractText(context.Background(), []byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestExtractText_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pdftext.NewExtractor().ExtractText(ctx, buildPDF("BT /F1 12 Tf (x) Tj ET"))
	assert.ErrorIs(t, err, context.Canceled)
}
