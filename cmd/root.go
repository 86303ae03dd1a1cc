// Package cmd implements the CLI for relcheck using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "relcheck <doc_file> [v1_version] [v2_version]",
	Short: "relcheck — assemble a combined release checklist",
	Long: `relcheck assembles a combined release checklist from the backend,
documentation, and UI release documents, normalizes their list markup into
checkboxes, and fills in version placeholders.

The backend checklist is read from RELEASE.md and the UI checklist from
jaeger-ui/RELEASE.md, both relative to the working directory; only the
documentation file path is given on the command line.

Examples:
  relcheck path/to/docs/RELEASE.md 1.50.0 2.3.0
  relcheck path/to/docs/RELEASE.md "" 2.3.0`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runFormat,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
