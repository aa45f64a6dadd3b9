package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .svgcheck.yaml config file",
	Long:  `Create a .svgcheck.yaml configuration file in the current directory with the devicon repository layout.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".svgcheck.yaml"); err == nil && !force {
			return errors.New(".svgcheck.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".svgcheck.yaml", []byte(defaultConfig), 0644); err != nil {
			return errors.Wrap(err, "writing config file")
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .svgcheck.yaml")
		return nil
	},
}

const defaultConfig = `# svgcheck configuration
# Docs: https://github.com/yacobolo/svgcheck

# Shared settings
verbose: false
quiet: false
color: false
output-format: text     # text | issues | json | markdown
log-format: text        # text | json
print-linter-name: true

# CI check of icons missing from the icon font
check:
  devicon-json: devicon.json
  icomoon-json: icomoon.json
  icons-dir: icons
  env-var: ERR_MSGS

# Explicit validation (svgcheck validate)
validate:
  paths:
    - "icons/**/*.svg"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
