package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docval/internal/config"
	"docval/internal/domain"
	"docval/internal/parser"
	"docval/internal/parser/claude"
	"docval/internal/parser/gemini"
	"docval/internal/parser/openai"
	"docval/internal/parser/pdftext"
	"docval/internal/port"
	"docval/internal/report"
	"docval/internal/service"
	"docval/internal/validator"
)

var (
	validateCountry    string
	validatePersonType string
	validateName       string
	validateID         string
	validateRecords    string
	validateFormat     string
	validateOutput     string
	validateStrict     bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [files.pdf...]",
	Short: "Validate a partner's documents",
	Long: `Validate PDF documents (or pre-extracted records with --records) against the
policy for a country and person type.

Exit status is 2 when the overall verdict is ERROR, and 1 when it is WARNING
and --strict is set.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateCountry, "country", "", "Partner country (required)")
	validateCmd.Flags().StringVar(&validatePersonType, "person-type", "", "Person type: natural or legal (required)")
	validateCmd.Flags().StringVar(&validateName, "name", "", "Expected legal name")
	validateCmd.Flags().StringVar(&validateID, "id", "", "Expected identification")
	validateCmd.Flags().StringVar(&validateRecords, "records", "", "JSON file with extracted records instead of PDFs")
	validateCmd.Flags().StringVar(&validateFormat, "format", "table", "Output format: table, json, csv, xlsx")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "", "Write output to file instead of stdout")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Exit non-zero on WARNING as well as ERROR")
	_ = validateCmd.MarkFlagRequired("country")
	_ = validateCmd.MarkFlagRequired("person-type")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateRecords == "" && len(args) == 0 {
		return fmt.Errorf("provide PDF files or --records")
	}
	if validateRecords != "" && len(args) > 0 {
		return fmt.Errorf("--records cannot be combined with PDF files")
	}
	if validateFormat == "xlsx" && validateOutput == "" {
		return fmt.Errorf("--format xlsx requires --output")
	}

	personType, err := domain.ParsePersonType(validatePersonType)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	store, err := loadPolicies(cfg.Policy.File)
	if err != nil {
		return err
	}

	// Record-only runs never call the extractor, so none is required.
	var records port.RecordExtractor
	if validateRecords == "" {
		if records, err = newExtractor(&cfg.Parser); err != nil {
			return err
		}
	}

	engine := validator.NewEngine(store, validator.WithWorkers(cfg.Validation.Workers))
	svc := service.NewValidationService(engine, store, pdftext.NewExtractor(), records, &cfg.Validation)

	params := service.ValidationParams{
		Country:      validateCountry,
		PersonType:   personType,
		ExpectedName: validateName,
		ExpectedID:   validateID,
	}

	var outcome *service.ValidationOutcome
	if validateRecords != "" {
		recs, err := readRecords(validateRecords)
		if err != nil {
			return err
		}
		outcome, err = svc.ValidateRecords(cmd.Context(), params, recs)
		if err != nil {
			return err
		}
	} else {
		files, err := readSourceFiles(args)
		if err != nil {
			return err
		}
		outcome, err = svc.ValidateFiles(cmd.Context(), params, files)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if validateOutput != "" {
		f, err := os.Create(validateOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := writeOutcome(out, outcome, validateFormat); err != nil {
		return err
	}
	return verdictExit(outcome.Report.Verdict.Overall, validateStrict)
}

func newExtractor(cfg *config.ParserConfig) (port.RecordExtractor, error) {
	parser.RegisterProvider("openai", openai.Factory)
	parser.RegisterProvider("claude", claude.Factory)
	parser.RegisterProvider("gemini", gemini.Factory)

	x, err := parser.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing extractor: %w", err)
	}
	if x == nil {
		return nil, fmt.Errorf("no extraction provider configured; set DOCVAL_PARSER_PRIMARY_PROVIDER or use --records")
	}
	return x, nil
}

func readRecords(path string) ([]domain.ExtractedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	var recs []domain.ExtractedRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decoding records %s: %w", path, err)
	}
	for i := range recs {
		if recs[i].SourceID == "" {
			recs[i].SourceID = fmt.Sprintf("record-%d", i+1)
		}
	}
	return recs, nil
}

func readSourceFiles(paths []string) ([]service.SourceFile, error) {
	files := make([]service.SourceFile, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		files = append(files, service.SourceFile{Name: filepath.Base(p), Content: data})
	}
	return files, nil
}

func writeOutcome(out io.Writer, outcome *service.ValidationOutcome, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*service.ValidationOutcome
			Summary []report.Message `json:"summary"`
		}{outcome, report.Summarize(outcome.Report)})
	case "csv":
		return report.NewCSVWriter(out).WriteReport(outcome.Report)
	case "xlsx":
		return report.WriteXLSX(out, outcome.Report)
	case "table":
		return outputOutcomeHuman(out, outcome)
	default:
		return fmt.Errorf("invalid --format %q: must be table, json, csv or xlsx", format)
	}
}

var (
	okStyle      = color.New(color.Bold, color.FgHiGreen)
	warningStyle = color.New(color.Bold, color.FgYellow)
	errorStyle   = color.New(color.Bold, color.FgHiRed)
	headingStyle = color.New(color.Bold)
)

func statusStyle(s domain.ValidationStatus) *color.Color {
	switch s {
	case domain.StatusError:
		return errorStyle
	case domain.StatusWarning:
		return warningStyle
	default:
		return okStyle
	}
}

func outputOutcomeHuman(out io.Writer, outcome *service.ValidationOutcome) error {
	r := outcome.Report
	headingStyle.Fprintf(out, "%s / %s\n\n", r.Country, r.PersonType.Label())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(report.Columns(r.IDLabel), "\t"))
	for i, row := range report.Rows(r) {
		row[6] = statusStyle(r.Results[i].Status).Sprint(row[6])
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(outcome.Failures) > 0 {
		fmt.Fprintln(out)
		headingStyle.Fprintln(out, "Files not validated:")
		for _, f := range outcome.Failures {
			fmt.Fprintf(out, "  %s (%s): %s\n", f.SourceID, f.Stage, f.Message)
		}
	}

	fmt.Fprintln(out)
	for _, m := range report.Summarize(r) {
		statusStyle(m.Level).Fprintf(out, "[%s] ", m.Level)
		fmt.Fprintln(out, m.Text)
	}
	statusStyle(r.Verdict.Overall).Fprintf(out, "\nOverall: %s\n", r.Verdict.Overall)
	return nil
}

// verdictExit maps the overall verdict to the process exit status.
func verdictExit(overall domain.ValidationStatus, strict bool) error {
	switch {
	case overall == domain.StatusError:
		return &exitError{code: 2}
	case overall == domain.StatusWarning && strict:
		return &exitError{code: 1}
	default:
		return nil
	}
}
