package report

import (
	"encoding/csv"
	"io"

	"docval/internal/domain"
)

// BOM is the UTF-8 byte order mark, written first so spreadsheet tools on
// Windows detect the encoding.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter wraps csv.Writer for exporting result tables.
type CSVWriter struct {
	out io.Writer
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{out: w, csv: csv.NewWriter(w)}
}

// WriteReport writes the BOM, the header row and one row per result, then
// flushes.
func (w *CSVWriter) WriteReport(r *domain.Report) error {
	if _, err := w.out.Write(BOM); err != nil {
		return err
	}
	if err := w.csv.Write(Columns(r.IDLabel)); err != nil {
		return err
	}
	if err := w.csv.WriteAll(Rows(r)); err != nil {
		return err
	}
	return w.csv.Error()
}
