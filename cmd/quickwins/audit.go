package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/awalter/quickwins"
	"github.com/awalter/quickwins/analyze"
)

// Run executes the audit command.
func (c *AuditCmd) Run(deps *Dependencies) error {
	progress := func(percent int, message string) {
		fmt.Fprintf(deps.Stderr, "[%3d%%] %s\n", percent, message)
	}

	result, err := deps.Crawler.Run(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quickwins.ErrorMessage(err))
		return err
	}

	analysis := analyze.Run(result)

	var pri *quickwins.Prioritization
	if deps.Prioritizer != nil {
		pri, err = deps.Prioritizer.Prioritize(deps.Ctx, result, analysis)
		if err != nil {
			// Prioritization is best-effort; the audit stands without it.
			fmt.Fprintf(deps.Stderr, "prioritization unavailable: %s\n", quickwins.ErrorMessage(err))
			pri = nil
		}
	}

	report := quickwins.BuildReport(result, analysis, pri)
	c.printSummary(deps, result, report)

	if c.Report != "" {
		f, err := os.Create(c.Report)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		if err := deps.Reports.Write(f, report); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", quickwins.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "\nAction plan written to %s\n", c.Report)
	}

	return nil
}

func (c *AuditCmd) printSummary(deps *Dependencies, result *quickwins.CrawlResult, report *quickwins.Report) {
	fmt.Fprintf(deps.Stdout, "%s — score %d/100\n", report.Summary.Domain, report.Score)
	fmt.Fprintf(deps.Stdout, "Discovered %d URLs (%s), analyzed %d pages\n",
		result.URLsDiscovered, result.DiscoveryMethod, result.URLsAnalyzed)
	if report.Summary.SitemapMissing {
		fmt.Fprintln(deps.Stdout, "No sitemap found; URLs discovered by crawling from the homepage")
	}

	if len(report.QuickWins) > 0 {
		fmt.Fprintln(deps.Stdout, "\nTop quick wins:")
		for _, win := range report.QuickWins {
			fmt.Fprintf(deps.Stdout, "  %d. [%s] %s\n     %s\n", win.Rank, win.Severity, displayIssue(win.Issue), win.Action)
		}
	}

	fmt.Fprintln(deps.Stdout, "\nFindings:")
	total := 0
	for _, cat := range quickwins.Categories {
		findings := report.Findings[cat]
		if len(findings) == 0 {
			continue
		}
		fmt.Fprintf(deps.Stdout, "  %s:\n", cat)
		for _, finding := range findings {
			fmt.Fprintf(deps.Stdout, "    [%s] %s — %d pages\n", finding.Severity, displayIssue(finding.Issue), finding.Count)
			total++
		}
	}
	if total == 0 {
		fmt.Fprintln(deps.Stdout, "  none")
	}
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
