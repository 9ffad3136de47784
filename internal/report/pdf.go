package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/farcloser/baseline"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 5.2
)

// WritePDF renders result as a PDF document at path, with the same sections as the Markdown report.
func WritePDF(path string, result *baseline.Result, opts Options) error {
	if path == "" {
		return errEmptyPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	pdf := buildPDF(result, opts)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	return nil
}

func buildPDF(result *baseline.Result, opts Options) *gofpdf.Fpdf {
	text := opts.Strings

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(true, 14)

	// Core fonts are cp1252; the translator keeps å, ä and ö intact.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(text.Title, true)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 9, tr(text.Title), "", 1, "L", false, 0, "")

	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", text.Generated, opts.Now.Local().Format(TimeLayout))),
		"", 1, "L", false, 0, "")
	pdf.Ln(2)

	sectionTitle(pdf, tr(text.LogFiles))

	for _, name := range result.Files {
		bullet(pdf, tr(name))
	}

	pdf.Ln(2)

	sectionTitle(pdf, tr(text.Summary))
	kv(pdf, tr(text.TotalChecks), strconv.Itoa(len(result.Records)))
	kv(pdf, baseline.StatusOK.String(), strconv.Itoa(result.Counts.OK))
	kv(pdf, baseline.StatusWarn.String(), strconv.Itoa(result.Counts.Warn))
	kv(pdf, baseline.StatusFail.String(), strconv.Itoa(result.Counts.Fail))
	kv(pdf, tr(text.WorstStatus), result.Worst.String())
	kv(pdf, tr(text.RiskLevel), tr(text.Risk(result.Risk)))
	pdf.Ln(2)

	sectionTitle(pdf, tr(text.Findings))

	if len(result.Findings) == 0 {
		plain(pdf, tr(text.NoFindings))
	} else {
		for _, finding := range result.Findings {
			pdf.SetFont(fontFamily, "B", 10)
			pdf.SetTextColor(statusColor(finding.Status))
			pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("[%s] %s / %s / %s",
				finding.Status, finding.Host.Or("?"), finding.OS.Or("?"), finding.Check.Or("?"))), "", "L", false)

			pdf.SetFont(fontFamily, "", 9)
			pdf.SetTextColor(30, 30, 30)
			pdf.MultiCell(0, 4.5, tr(fmt.Sprintf("    %s: %s", text.Details, flatten(finding.Details.Or("")))),
				"", "L", false)
		}
	}

	pdf.Ln(2)

	sectionTitle(pdf, tr(text.DecodeErrors))

	if len(result.Errors) == 0 {
		plain(pdf, tr(text.NoDecodeErrors))
	} else {
		for _, err := range result.Errors {
			bullet(pdf, tr(flatten(err.Error())))
		}
	}

	return pdf
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(fontFamily, "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(pdf.GetX(), pdf.GetY(), 196, pdf.GetY())
	pdf.Ln(2)
}

func kv(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(90, lineHeight, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(20, 20, 20)
	pdf.MultiCell(0, lineHeight, value, "", "L", false)
}

func bullet(pdf *gofpdf.Fpdf, line string) {
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(30, 30, 30)
	pdf.MultiCell(0, lineHeight, "- "+line, "", "L", false)
}

func plain(pdf *gofpdf.Fpdf, line string) {
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.MultiCell(0, lineHeight, line, "", "L", false)
}

func statusColor(status baseline.Status) (int, int, int) {
	switch status {
	case baseline.StatusFail:
		return 170, 20, 20
	case baseline.StatusWarn:
		return 150, 100, 0
	default:
		return 20, 20, 20
	}
}

func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")

	return strings.TrimSpace(s)
}
