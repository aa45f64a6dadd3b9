package svgcheck

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Files     []JSONFile  `json:"files"`
	Message   string      `json:"message,omitempty"` // Combined report, empty when clean
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues  int  `json:"total_issues"`
	FilesChecked int  `json:"files_checked"`
	FilesFailed  int  `json:"files_failed"`
	Passed       bool `json:"passed"`
}

// JSONFile groups the issues of one failing file
type JSONFile struct {
	Name   string      `json:"name"`
	Path   string      `json:"path"`
	Issues []JSONIssue `json:"issues"`
}

// JSONIssue represents a single violation
type JSONIssue struct {
	Rule     string `json:"rule"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
}

// WriteJSON writes the report as JSON
func WriteJSON(w io.Writer, report *Report) error {
	output := buildJSONOutput(report)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a Report to JSONOutput
func buildJSONOutput(report *Report) JSONOutput {
	files := make([]JSONFile, len(report.Files))
	total := 0
	for i, f := range report.Files {
		issues := make([]JSONIssue, len(f.Issues))
		for j, issue := range f.Issues {
			issues[j] = JSONIssue{
				Rule:     issue.RuleID,
				Line:     issue.Pos.Line,
				Column:   issue.Pos.Column,
				Severity: issue.Severity,
				Message:  issue.Text,
				Linter:   issue.FromLinter,
			}
		}
		total += len(issues)
		files[i] = JSONFile{
			Name:   f.Name,
			Path:   f.Path,
			Issues: issues,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  total,
			FilesChecked: report.FilesChecked,
			FilesFailed:  len(report.Files),
			Passed:       !report.HasViolations(),
		},
		Files:   files,
		Message: report.Message(),
	}
}
