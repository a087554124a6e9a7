package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"docval/internal/domain"
	"docval/internal/report"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		RunID:      uuid.New(),
		Country:    "Costa Rica",
		PersonType: domain.PersonTypeLegal,
		IDLabel:    "Cédula jurídica",
		Results: []domain.ValidationResult{
			{
				SourceID:       "rut.pdf",
				DocumentKind:   "RUT",
				Status:         domain.StatusOK,
				Reasons:        []string{},
				LegalName:      "ACME S.A.",
				Identification: "3-101-123456",
				IssueDate:      "2025-01-10",
			},
			{
				SourceID:     "blank.pdf",
				DocumentKind: domain.UnknownDocumentKind,
				Status:       domain.StatusWarning,
				Reasons:      []string{"legal name not detected.", "Cédula jurídica not detected."},
			},
		},
		Verdict: domain.BatchVerdict{
			MissingRequiredKinds: []string{},
			HasWarning:           true,
			Overall:              domain.StatusWarning,
		},
		ValidatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestColumns_UsesIDLabel(t *testing.T) {
	cols := report.Columns("RFC")
	assert.Len(t, cols, 8)
	assert.Equal(t, "File", cols[0])
	assert.Equal(t, "Detected RFC", cols[3])
	assert.Equal(t, "Detail", cols[7])
}

func TestRows(t *testing.T) {
	rows := report.Rows(sampleReport())
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"rut.pdf", "RUT", "ACME S.A.", "3-101-123456", "2025-01-10", report.Placeholder, "OK", "OK"}, rows[0])

	assert.Equal(t, "blank.pdf", rows[1][0])
	assert.Equal(t, report.Placeholder, rows[1][2])
	assert.Equal(t, report.Placeholder, rows[1][3])
	assert.Equal(t, "WARNING", rows[1][6])
	assert.Equal(t, "legal name not detected. | Cédula jurídica not detected.", rows[1][7])
}

func TestCSVWriter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewCSVWriter(&buf).WriteReport(sampleReport()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), report.BOM))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(report.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Detected Cédula jurídica", records[0][3])
	assert.Equal(t, "rut.pdf", records[1][0])
	assert.Equal(t, "WARNING", records[2][6])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "File", rows[0][0])
	assert.Equal(t, "RUT", rows[1][1])
	assert.Equal(t, "OK", rows[1][7])
}

func TestSummarize_AllClear(t *testing.T) {
	r := sampleReport()
	r.Verdict = domain.BatchVerdict{MissingRequiredKinds: []string{}, Overall: domain.StatusOK}

	msgs := report.Summarize(r)
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.StatusOK, msgs[0].Level)
	assert.Contains(t, msgs[0].Text, "No automatic anomalies")
}

func TestSummarize_MissingAndError(t *testing.T) {
	r := sampleReport()
	r.Verdict = domain.BatchVerdict{
		MissingRequiredKinds: []string{"RUT", "Certificado de existencia"},
		HasError:             true,
		HasWarning:           true,
		Overall:              domain.StatusError,
	}

	msgs := report.Summarize(r)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Missing required document(s) for Persona jurídica in Costa Rica: RUT, Certificado de existencia.", msgs[0].Text)
	assert.Equal(t, domain.StatusError, msgs[1].Level)
	assert.Contains(t, msgs[1].Text, "critical")
}

func TestSummarize_WarningOnly(t *testing.T) {
	msgs := report.Summarize(sampleReport())
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.StatusWarning, msgs[0].Level)
	assert.Contains(t, msgs[0].Text, "minor inconsistencies")
}

func TestBuildFilename(t *testing.T) {
	assert.Equal(t, "validation_Costa_Rica_legal_2025-03-01.csv", report.BuildFilename(sampleReport(), "csv"))
	assert.Equal(t, "Per_natural", report.SanitizeFilename("Perú / natural"))
}
