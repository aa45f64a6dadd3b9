// Package logging builds the slog loggers used by the svgcheck CLI.
//
// Progress and diagnostics go to stderr so that stdout only carries the
// report:
//
//	logger := logging.New(logging.Config{Level: slog.LevelDebug})
//	logger.Debug("resolved svg paths", "count", 3)
//
// Use [NewDiscard] for --quiet.
package logging
