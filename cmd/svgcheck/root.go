package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "svgcheck",
	Short: "Validate SVG icon submissions before they are merged",
	Long: `Check new SVG icons against the icon library conventions:
a 0 0 128 128 viewBox, no stray sizing or positioning attributes,
and no fill declarations inside style elements.

All violations of all files are reported at once.`,
	// Default behavior: run check when no subcommand is given.
	// We must call loadConfig here because PreRunE of checkCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCheck(cmd.OutOrStdout())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".svgcheck.yaml", "Config file path")
	pf.String("output-format", "", "Output format: text|issues|json|markdown")
	pf.String("log-format", "text", "Log format on stderr: text|json")
	pf.String("env-var", "ERR_MSGS", "Variable the report is exported to through $GITHUB_ENV")
	pf.Bool("print-linter-name", true, "Show (svgcheck/rule) suffix in issues output")

	// Flags of the default check command are accepted on the root too.
	addCheckFlags(rootCmd)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
