package svgcheck

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// OutputConfig controls how reports are rendered.
type OutputConfig struct {
	PrintLinterName bool // Show (svgcheck) suffix on issues lines
	UseColors       bool // Force colors; otherwise auto-detected
}

// Reporter handles formatting and outputting validation results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config OutputConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config OutputConfig) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintText writes the combined report, the same text exported to CI.
func (r *Reporter) PrintText(report *Report) {
	if !report.HasViolations() {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, fmt.Sprintf("All SVGs found were good (%s checked).",
			pluralizeCount(report.FilesChecked, "file", "files")), r.useColors))
		return
	}

	fmt.Fprintln(r.w, RenderStyle(StyleRed, ReportHeader, r.useColors))
	for i, f := range report.Files {
		if i > 0 {
			fmt.Fprintln(r.w, "")
		}
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, f.Name+":", r.useColors))
		for _, issue := range f.Issues {
			fmt.Fprintf(r.w, "-%s\n", issue.Text)
		}
	}
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	// Sort issues by file, then line, then column; rule order breaks ties
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	filename := issue.Pos.Filename
	if filepath.IsAbs(filename) {
		filename = GetRelativePath(filename)
	}

	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s/%s)", issue.FromLinter, issue.RuleID)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(report *Report) {
	issues := report.Issues()

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s in %s (%s checked):\n",
		pluralizeCount(len(issues), "issue", "issues"),
		pluralizeCount(len(report.Files), "file", "files"),
		pluralizeCount(report.FilesChecked, "file", "files"))

	// Group by rule, printed in check order
	ruleCounts := make(map[string]int)
	for _, issue := range issues {
		ruleCounts[issue.RuleID]++
	}
	for _, rule := range Rules {
		if count := ruleCounts[rule.ID]; count > 0 {
			fmt.Fprintf(r.w, "* %s: %d\n", rule.ID, count)
		}
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
