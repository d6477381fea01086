// Package xlsx renders audit reports as Excel workbooks.
package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/awalter/quickwins"
	"github.com/xuri/excelize/v2"
)

// Ensure ReportWriter implements quickwins.ReportWriter.
var _ quickwins.ReportWriter = (*ReportWriter)(nil)

// actionPlanSheet is the workbook's first sheet: quick wins on top, then
// every finding with a fill-in status column.
const actionPlanSheet = "Action Plan"

// maxSheetURLs bounds how many affected URLs a detail sheet lists per issue.
const maxSheetURLs = 50

var severityFills = map[quickwins.Severity]string{
	quickwins.SeverityCritical: "DC2626",
	quickwins.SeverityHigh:     "EA580C",
	quickwins.SeverityMedium:   "CA8A04",
	quickwins.SeverityLow:      "6B7280",
}

var categorySheets = map[quickwins.Category]string{
	quickwins.CategoryContent:   "Content",
	quickwins.CategoryHeadings:  "Headings",
	quickwins.CategoryLinks:     "Links",
	quickwins.CategoryTechnical: "Technical",
}

// ReportWriter writes a Report as an Excel workbook with an action plan
// sheet and one detail sheet per issue category.
type ReportWriter struct{}

// NewReportWriter creates a new ReportWriter.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Write renders the report and streams the workbook to w.
func (rw *ReportWriter) Write(w io.Writer, report *quickwins.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return quickwins.Errorf(quickwins.EINTERNAL, "creating workbook styles: %v", err)
	}

	if err := rw.writeActionPlan(f, styles, report); err != nil {
		return err
	}
	for _, cat := range quickwins.Categories {
		if err := rw.writeCategorySheet(f, styles, cat, report.Findings[cat]); err != nil {
			return err
		}
	}

	// The default "Sheet1" was replaced by renaming; make the action plan
	// the sheet that opens first.
	idx, err := f.GetSheetIndex(actionPlanSheet)
	if err != nil {
		return quickwins.Errorf(quickwins.EINTERNAL, "locating action plan sheet: %v", err)
	}
	f.SetActiveSheet(idx)

	if err := f.Write(w); err != nil {
		return quickwins.Errorf(quickwins.EINTERNAL, "writing workbook: %v", err)
	}
	return nil
}

type styles struct {
	header   int
	title    int
	severity map[quickwins.Severity]int
}

func newStyles(f *excelize.File) (*styles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2563EB"}},
	})
	if err != nil {
		return nil, err
	}
	title, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, err
	}
	sev := make(map[quickwins.Severity]int, len(severityFills))
	for s, color := range severityFills {
		id, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return nil, err
		}
		sev[s] = id
	}
	return &styles{header: header, title: title, severity: sev}, nil
}

func (rw *ReportWriter) writeActionPlan(f *excelize.File, st *styles, report *quickwins.Report) error {
	if err := f.SetSheetName("Sheet1", actionPlanSheet); err != nil {
		return quickwins.Errorf(quickwins.EINTERNAL, "creating action plan sheet: %v", err)
	}
	sheet := actionPlanSheet

	setCell(f, sheet, "A", 1, fmt.Sprintf("SEO Action Plan — %s", report.Summary.Domain))
	f.SetCellStyle(sheet, "A1", "A1", st.title)
	setCell(f, sheet, "A", 2, fmt.Sprintf("Score: %d/100", report.Score))
	setCell(f, sheet, "A", 3, fmt.Sprintf("Pages analyzed: %d", report.Summary.URLsAnalyzed))
	if report.Summary.SitemapMissing {
		setCell(f, sheet, "A", 4, "No sitemap found: URLs were discovered by crawling from the homepage")
	}

	row := 6
	if len(report.QuickWins) > 0 {
		setCell(f, sheet, "A", row, "Top Quick Wins")
		f.SetCellStyle(sheet, cell("A", row), cell("A", row), st.title)
		row++
		row = rw.writeHeaderRow(f, st, sheet, row, []string{"Rank", "Issue", "Severity", "Action", "Impact", "Example URLs", "Status"})
		for _, win := range report.QuickWins {
			setCell(f, sheet, "A", row, win.Rank)
			setCell(f, sheet, "B", row, displayIssue(win.Issue))
			rw.writeSeverity(f, st, sheet, "C", row, win.Severity)
			setCell(f, sheet, "D", row, win.Action)
			setCell(f, sheet, "E", row, win.Impact)
			setCell(f, sheet, "F", row, strings.Join(win.URLs, "\n"))
			setCell(f, sheet, "G", row, "☐")
			row++
		}
		row += 2
	}

	setCell(f, sheet, "A", row, "All Findings")
	f.SetCellStyle(sheet, cell("A", row), cell("A", row), st.title)
	row++
	row = rw.writeHeaderRow(f, st, sheet, row, []string{"Category", "Issue", "Severity", "Affected Pages", "Status"})
	for _, cat := range quickwins.Categories {
		for _, finding := range report.Findings[cat] {
			setCell(f, sheet, "A", row, categorySheets[cat])
			setCell(f, sheet, "B", row, displayIssue(finding.Issue))
			rw.writeSeverity(f, st, sheet, "C", row, finding.Severity)
			setCell(f, sheet, "D", row, finding.Count)
			setCell(f, sheet, "E", row, "☐")
			row++
		}
	}

	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "B", 32)
	f.SetColWidth(sheet, "D", "E", 48)
	f.SetColWidth(sheet, "F", "F", 52)
	return nil
}

func (rw *ReportWriter) writeCategorySheet(f *excelize.File, st *styles, cat quickwins.Category, findings []quickwins.Finding) error {
	sheet := categorySheets[cat]
	if _, err := f.NewSheet(sheet); err != nil {
		return quickwins.Errorf(quickwins.EINTERNAL, "creating sheet %q: %v", sheet, err)
	}

	row := rw.writeHeaderRow(f, st, sheet, 1, []string{"Issue", "Severity", "Affected Pages", "URL"})
	for _, finding := range findings {
		urls := finding.URLs
		if len(urls) > maxSheetURLs {
			urls = urls[:maxSheetURLs]
		}
		if len(urls) == 0 {
			// Site-wide findings carry no per-URL rows.
			setCell(f, sheet, "A", row, displayIssue(finding.Issue))
			rw.writeSeverity(f, st, sheet, "B", row, finding.Severity)
			setCell(f, sheet, "C", row, finding.Count)
			row++
			continue
		}
		for _, u := range urls {
			setCell(f, sheet, "A", row, displayIssue(finding.Issue))
			rw.writeSeverity(f, st, sheet, "B", row, finding.Severity)
			setCell(f, sheet, "C", row, finding.Count)
			setCell(f, sheet, "D", row, u)
			row++
		}
	}

	f.SetColWidth(sheet, "A", "A", 32)
	f.SetColWidth(sheet, "D", "D", 64)
	return nil
}

func (rw *ReportWriter) writeHeaderRow(f *excelize.File, st *styles, sheet string, row int, headers []string) int {
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		setCell(f, sheet, col, row, h)
	}
	last, _ := excelize.ColumnNumberToName(len(headers))
	f.SetCellStyle(sheet, cell("A", row), cell(last, row), st.header)
	return row + 1
}

func (rw *ReportWriter) writeSeverity(f *excelize.File, st *styles, sheet, col string, row int, sev quickwins.Severity) {
	setCell(f, sheet, col, row, string(sev))
	if id, ok := st.severity[sev]; ok {
		f.SetCellStyle(sheet, cell(col, row), cell(col, row), id)
	}
}

func setCell(f *excelize.File, sheet, col string, row int, value any) {
	f.SetCellValue(sheet, cell(col, row), value)
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// displayIssue turns an issue type like "duplicate_titles" into
// "Duplicate titles".
func displayIssue(issueType string) string {
	s := strings.ReplaceAll(issueType, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
