package svgcheck

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noColors keeps CI environment variables from enabling ANSI styling.
func noColors(t *testing.T) {
	t.Helper()
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")
}

func sampleReport() *Report {
	return &Report{
		FilesChecked: 3,
		Files: []FileReport{
			{
				Path: "icons/go/go-original.svg",
				Name: "go-original.svg",
				Issues: []Issue{
					{
						FromLinter: LinterName,
						RuleID:     RuleViewBox,
						Text:       IssueViewBox,
						Severity:   SeverityError,
						Pos:        IssuePos{Filename: "icons/go/go-original.svg", Line: 1, Column: 1},
					},
					{
						FromLinter: LinterName,
						RuleID:     RuleAttrX,
						Text:       "unnecessary 'x' attribute -> Remove it",
						Severity:   SeverityError,
						Pos:        IssuePos{Filename: "icons/go/go-original.svg", Line: 1, Column: 1},
					},
				},
			},
			{
				Path: "icons/rust/rust-plain.svg",
				Name: "rust-plain.svg",
				Issues: []Issue{
					{
						FromLinter: LinterName,
						RuleID:     RuleStyleFill,
						Text:       IssueStyleFill,
						Severity:   SeverityError,
						Pos:        IssuePos{Filename: "icons/rust/rust-plain.svg", Line: 4, Column: 5},
					},
				},
			},
		},
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		expected   OutputFormat
	}{
		{name: "default is text", formatFlag: "", expected: OutputText},
		{name: "explicit text", formatFlag: "text", expected: OutputText},
		{name: "explicit issues", formatFlag: "issues", expected: OutputIssues},
		{name: "explicit json", formatFlag: "json", expected: OutputJSON},
		{name: "explicit markdown", formatFlag: "markdown", expected: OutputMarkdown},
		{name: "markdown shorthand (md)", formatFlag: "md", expected: OutputMarkdown},
		{name: "unknown falls back", formatFlag: "sarif", expected: OutputText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag))
		})
	}
}

func TestWriteOutput_Text(t *testing.T) {
	noColors(t)
	report := sampleReport()

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, report, OutputText, OutputConfig{}))

	// Text output is the exported message plus a trailing newline
	assert.Equal(t, report.Message()+"\n", buf.String())
}

func TestWriteOutput_TextClean(t *testing.T) {
	noColors(t)

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, &Report{FilesChecked: 2}, OutputText, OutputConfig{}))
	assert.Equal(t, "All SVGs found were good (2 files checked).\n", buf.String())
}

func TestWriteOutput_Issues(t *testing.T) {
	noColors(t)

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleReport(), OutputIssues, OutputConfig{PrintLinterName: true}))

	want := "icons/go/go-original.svg:1:1: " + IssueViewBox + " (svgcheck/viewbox)\n" +
		"icons/go/go-original.svg:1:1: unnecessary 'x' attribute -> Remove it (svgcheck/attr-x)\n" +
		"icons/rust/rust-plain.svg:4:5: " + IssueStyleFill + " (svgcheck/style-fill)\n" +
		"\n" +
		"3 issues in 2 files (3 files checked):\n" +
		"* viewbox: 1\n" +
		"* attr-x: 1\n" +
		"* style-fill: 1\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteOutput_IssuesWithoutLinterName(t *testing.T) {
	noColors(t)

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleReport(), OutputIssues, OutputConfig{}))
	assert.NotContains(t, buf.String(), "(svgcheck")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.NotEmpty(t, output.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 3, FilesChecked: 3, FilesFailed: 2, Passed: false}, output.Summary)
	require.Len(t, output.Files, 2)
	assert.Equal(t, "go-original.svg", output.Files[0].Name)
	assert.Equal(t, "icons/go/go-original.svg", output.Files[0].Path)
	require.Len(t, output.Files[0].Issues, 2)
	assert.Equal(t, JSONIssue{
		Rule:     RuleAttrX,
		Line:     1,
		Column:   1,
		Severity: SeverityError,
		Message:  "unnecessary 'x' attribute -> Remove it",
		Linter:   LinterName,
	}, output.Files[0].Issues[1])
	assert.Equal(t, sampleReport().Message(), output.Message)
}

func TestWriteJSON_Clean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &Report{FilesChecked: 1}))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.NotContains(t, raw, "message")
	assert.Equal(t, []any{}, raw["files"])
	assert.Equal(t, true, raw["summary"].(map[string]any)["passed"])
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleReport()))

	output := buf.String()
	assert.Contains(t, output, "# SVG Check Report")
	assert.Contains(t, output, "2 files failed out of 3 checked")
	assert.Contains(t, output, "## `go-original.svg`")
	assert.Contains(t, output, "| 1 | `attr-x` | unnecessary 'x' attribute -> Remove it |")
	assert.Contains(t, output, "## `rust-plain.svg`")
}

func TestWriteMarkdown_Clean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, &Report{FilesChecked: 1}))
	assert.Contains(t, buf.String(), "Passed (1 file checked)")
	assert.NotContains(t, buf.String(), "|")
}

func TestMarkdownEscaping(t *testing.T) {
	assert.Equal(t, `a \| b c`, escapeMarkdown("a | b\nc"))
}
