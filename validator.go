package svgcheck

import (
	"io"
	"os"
	"path/filepath"
)

// Validate checks every file in order and aggregates the violations.
//
// A clean batch returns the report and a nil error. A batch with violations
// returns the report together with a *ValidationError. A file that cannot be
// read or parsed stops the batch and returns a *ParseError with no report.
func Validate(paths []string) (*Report, error) {
	report := &Report{}
	for _, path := range paths {
		fr, err := ValidateFile(path)
		if err != nil {
			return nil, err
		}
		report.add(fr)
	}

	if report.HasViolations() {
		return report, &ValidationError{Report: report}
	}
	return report, nil
}

// ValidateFile checks a single file.
func ValidateFile(path string) (FileReport, error) {
	// #nosec G304 - paths come from the manifest or the command line
	f, err := os.Open(path)
	if err != nil {
		return FileReport{}, newParseError(path, err)
	}
	defer f.Close()

	return CheckDocument(path, f)
}

// CheckDocument parses r and applies every rule in Rules.
// name is used for the report header (base name) and issue positions.
func CheckDocument(name string, r io.Reader) (FileReport, error) {
	doc, err := ParseDocument(r)
	if err != nil {
		return FileReport{}, newParseError(name, err)
	}

	fr := FileReport{Path: name, Name: filepath.Base(name)}
	for _, rule := range Rules {
		text, violated := rule.Check(doc)
		if !violated {
			continue
		}

		offset := doc.RootOffset
		if rule.At != nil {
			offset = rule.At(doc)
		}
		line, col := doc.Position(offset)

		fr.Issues = append(fr.Issues, Issue{
			FromLinter: LinterName,
			RuleID:     rule.ID,
			Text:       text,
			Severity:   SeverityError,
			Pos: IssuePos{
				Filename: name,
				Line:     line,
				Column:   col,
			},
		})
	}

	return fr, nil
}
