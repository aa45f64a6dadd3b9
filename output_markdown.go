package svgcheck

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the report as a Markdown document suitable for a pull
// request comment.
func WriteMarkdown(w io.Writer, report *Report) error {
	var b strings.Builder

	b.WriteString("# SVG Check Report\n\n")
	if !report.HasViolations() {
		fmt.Fprintf(&b, "**Status:** ✅ Passed (%s checked)\n", pluralizeCount(report.FilesChecked, "file", "files"))
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "**Status:** ❌ %s failed out of %d checked\n",
		pluralizeCount(len(report.Files), "file", "files"), report.FilesChecked)

	for _, f := range report.Files {
		fmt.Fprintf(&b, "\n## `%s`\n\n", f.Name)
		b.WriteString("| Line | Rule | Problem |\n")
		b.WriteString("|------|------|---------|\n")
		for _, issue := range f.Issues {
			fmt.Fprintf(&b, "| %d | `%s` | %s |\n", issue.Pos.Line, issue.RuleID, escapeMarkdown(issue.Text))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// escapeMarkdown escapes characters that break table cells
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
