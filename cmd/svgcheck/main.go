// Package main provides the svgcheck CLI, the CI gate for SVG icon submissions.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/yacobolo/svgcheck"
)

// Exit codes returned by the svgcheck CLI.
const (
	// ExitSuccess indicates every checked SVG passed.
	ExitSuccess = 0
	// ExitViolations indicates at least one SVG broke a rule.
	ExitViolations = 1
	// ExitFatal indicates the batch could not run: unparseable SVG, bad
	// manifest, missing path or invalid configuration.
	ExitFatal = 2
)

func main() {
	// A local .env mirrors the variables CI provides; a missing file is fine.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	os.Exit(exitCode(err, os.Stderr))
}

// exitCode maps a command error to the process exit code.
// Violations were already reported by the command, anything else is printed.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return ExitSuccess
	}

	var verr *svgcheck.ValidationError
	if errors.As(err, &verr) {
		return ExitViolations
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitFatal
}
