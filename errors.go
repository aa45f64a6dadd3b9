package svgcheck

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNoGitHubEnv is returned by SetEnvVar outside of GitHub Actions.
var ErrNoGitHubEnv = errors.New("GITHUB_ENV is not set")

// ParseError reports a file that could not be read or is not well-formed XML.
// It aborts the whole batch.
type ParseError struct {
	Path string
	Line int // 0 when unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Err: err}
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		pe.Line = syn.Line
	}
	return pe
}

// ValidationError is returned when one or more files break a rule.
// Its message is the combined report of every failing file.
type ValidationError struct {
	Report *Report
}

func (e *ValidationError) Error() string {
	return e.Report.Message()
}

// FieldError is one JSON schema violation in a manifest.
type FieldError struct {
	Field   string
	Message string
}

// ManifestError reports a manifest that does not match its schema.
type ManifestError struct {
	Path   string
	Errors []FieldError
}

func (e *ManifestError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "manifest %s is invalid:", e.Path)
	for _, fe := range e.Errors {
		fmt.Fprintf(&b, "\n  %s: %s", fe.Field, fe.Message)
	}
	return b.String()
}
