package main

import (
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/yacobolo/svgcheck"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the SVGs of icons not yet built into the icon font",
	Long: `Compare the icon manifest with the icon font manifest, collect the SVG
files of every icon the font does not contain yet and validate them.

On failure the combined report is exported to $GITHUB_ENV (ERR_MSGS by
default) so later workflow steps can post it on the pull request.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd.OutOrStdout())
	},
}

func init() {
	addCheckFlags(checkCmd)
}

func addCheckFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("devicon-json", "devicon.json", "Icon manifest listing every icon and its versions")
	f.String("icomoon-json", "icomoon.json", "Icon font manifest of the glyphs already built")
	f.String("icons-dir", "icons", "Folder holding one sub-folder of SVGs per icon")
}

// runCheck is shared between `svgcheck check` and the bare `svgcheck`.
func runCheck(w io.Writer) error {
	cfg := buildCheckConfig()
	if err := validateStruct(cfg); err != nil {
		return err
	}
	logger := cfg.Run.newLogger()

	icons, err := svgcheck.LoadIconManifest(cfg.DeviconJSON)
	if err != nil {
		return err
	}
	font, err := svgcheck.LoadFontManifest(cfg.IcomoonJSON)
	if err != nil {
		return err
	}

	newIcons := svgcheck.FindNewIcons(icons, font)
	if len(newIcons) == 0 {
		logger.Info("no new icons, nothing to check")
		return nil
	}

	names := make([]string, len(newIcons))
	for i, icon := range newIcons {
		names[i] = icon.Name
	}
	logger.Info("checking new icons", "icons", names)

	paths, err := svgcheck.SVGPaths(newIcons, cfg.IconsDir)
	if err != nil {
		exportError(cfg.Run, err, logger)
		return err
	}
	logger.Debug("resolved svg files", "paths", paths)

	return runValidation(w, paths, cfg.Run, logger)
}

// runValidation validates paths, writes the report and exports it on failure.
func runValidation(w io.Writer, paths []string, cfg runConfig, logger *slog.Logger) error {
	report, err := svgcheck.Validate(paths)

	var verr *svgcheck.ValidationError
	if err != nil && !errors.As(err, &verr) {
		// Fatal: nothing was reported, but CI still needs the reason.
		exportError(cfg, err, logger)
		return err
	}

	if !cfg.Quiet {
		format := svgcheck.DetermineOutputFormat(cfg.OutputFormat)
		if werr := svgcheck.WriteOutput(w, report, format, cfg.Output); werr != nil {
			return werr
		}
	}

	if verr != nil {
		exportError(cfg, verr, logger)
		return verr
	}

	logger.Info("all svgs passed", "files", report.FilesChecked)
	return nil
}

// exportError hands the failure text to later workflow steps. Outside of
// GitHub Actions there is nowhere to export to, which is not an error.
func exportError(cfg runConfig, cause error, logger *slog.Logger) {
	err := svgcheck.SetEnvVar(cfg.EnvVar, cause.Error())
	switch {
	case err == nil:
		logger.Debug("exported report", "var", cfg.EnvVar)
	case errors.Is(err, svgcheck.ErrNoGitHubEnv):
		logger.Debug("GITHUB_ENV not set, report not exported", "var", cfg.EnvVar)
	default:
		logger.Warn("could not export report", "var", cfg.EnvVar, "error", err)
	}
}
