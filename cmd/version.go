package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/pencraft/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the version, commit, build time, Go version and platform of
this binary.

Examples:
  pencraft version
  pencraft version --short
  pencraft version -f json`,
	Args: cobra.NoArgs,
	RunE: runVersionCommand,
}

var (
	versionFormat string
	versionShort  bool
)

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
	AddFlagValidation(versionCmd, "format", func(format string) error {
		return ValidateFormat(format, []string{"text", "json"})
	})
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	info := version.GetBuildInfo()
	out := cmd.OutOrStdout()

	switch {
	case versionFormat == "json":
		return writeJSON(out, info)
	case versionShort:
		fmt.Fprintln(out, info.Short())
	default:
		fmt.Fprintf(out, "pencraft %s\n", info.Short())
		fmt.Fprintln(out, info.String())
	}
	return nil
}
