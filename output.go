package svgcheck

import (
	"io"

	"github.com/cockroachdb/errors"
)

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputText prints the combined report exactly as exported to CI (default)
	OutputText OutputFormat = "text"
	// OutputIssues prints one golangci-lint style line per violation
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (PR comments)
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the output format from the --output-format flag.
// Unknown values fall back to the default.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "text":
		return OutputText
	case "issues":
		return OutputIssues
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	default:
		return DetermineDefaultOutputFormat()
	}
}

// DetermineDefaultOutputFormat returns the default output format
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputText
}

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, report *Report, format OutputFormat, config OutputConfig) error {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(report.Issues())
		reporter.PrintSummary(report)

	case OutputJSON:
		if err := WriteJSON(w, report); err != nil {
			return errors.Wrap(err, "write JSON")
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, report); err != nil {
			return errors.Wrap(err, "write Markdown")
		}

	default:
		NewReporter(w, config).PrintText(report)
	}
	return nil
}
