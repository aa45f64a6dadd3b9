package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/yacobolo/svgcheck"
)

var validateCmd = &cobra.Command{
	Use:   "validate [paths...]",
	Short: "Validate the given SVG files or glob patterns",
	Long: `Validate SVG files directly, without consulting the manifests.
Arguments may be file paths or doublestar globs such as icons/**/*.svg.
Glob matches that are gitignored or not .svg files are skipped.
Without arguments the validate.paths setting is used.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), args)
	},
}

func runValidate(w io.Writer, args []string) error {
	cfg := buildValidateConfig(args)
	if err := validateStruct(cfg); err != nil {
		return err
	}
	logger := cfg.Run.newLogger()

	files, stats, err := svgcheck.ExpandPaths(cfg.Paths)
	if err != nil {
		return err
	}
	logger.Debug("discovered files",
		"discovered", stats.FilesDiscovered,
		"selected", stats.FilesSelected,
		"skipped", stats.FilesSkipped)

	if len(files) == 0 {
		return errors.Newf("no SVG files matched %v", cfg.Paths)
	}

	return runValidation(w, files, cfg.Run, logger)
}
