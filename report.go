package svgcheck

import "strings"

// ReportHeader opens the combined failure message.
const ReportHeader = "Errors found in these files:"

// FileReport holds the violations of one file, in rule order.
type FileReport struct {
	Path   string  // Path as given by the caller
	Name   string  // Base name, used as the block header
	Issues []Issue // Empty for a compliant file
}

// Block renders the file's section of the combined message:
//
//	go-original.svg:
//	-'x' ...
func (f FileReport) Block() string {
	lines := make([]string, 0, len(f.Issues)+1)
	lines = append(lines, f.Name+":")
	for _, issue := range f.Issues {
		lines = append(lines, "-"+issue.Text)
	}
	return strings.Join(lines, "\n")
}

// Report is the outcome of a batch. Files only lists files with violations.
type Report struct {
	Files        []FileReport
	FilesChecked int
}

// add records a checked file; compliant files leave no trace besides the count.
func (r *Report) add(f FileReport) {
	r.FilesChecked++
	if len(f.Issues) > 0 {
		r.Files = append(r.Files, f)
	}
}

// HasViolations reports whether any file failed a rule.
func (r *Report) HasViolations() bool {
	return len(r.Files) > 0
}

// Issues flattens the report in batch order.
func (r *Report) Issues() []Issue {
	var issues []Issue
	for _, f := range r.Files {
		issues = append(issues, f.Issues...)
	}
	return issues
}

// Message returns the combined failure message, or "" for a clean report.
func (r *Report) Message() string {
	if !r.HasViolations() {
		return ""
	}
	blocks := make([]string, len(r.Files))
	for i, f := range r.Files {
		blocks[i] = f.Block()
	}
	return ReportHeader + "\n" + strings.Join(blocks, "\n\n")
}
