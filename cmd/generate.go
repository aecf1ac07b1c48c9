package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/pencraft/internal/services"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"g"},
	Short:   "Write a new document with every built-in section",
	Long: `Create the configured page set, tiled down the canvas, and run every
built-in pass in prerequisite order. The result is written once, as an
object-shaped document carrying the section ledger.

An existing document is left alone unless --force is given.

Examples:
  pencraft generate
  pencraft generate --force`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var generateForce bool

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().BoolVarP(&generateForce, "force", "f", false, "Overwrite an existing document")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	results, err := a.service.Generate(cmd.Context(), services.GenerateOptions{Force: generateForce})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		printRun(out, r)
	}
	fmt.Fprintf(out, "Wrote %s\n", a.service.Store().Path())
	return nil
}

func printRun(out io.Writer, r *services.RunResult) {
	if !r.Changed() {
		fmt.Fprintf(out, "%s: nothing to add, %d sections already present\n", r.Pass, len(r.Skipped))
		return
	}
	fmt.Fprintf(out, "%s: wrote %d sections, %d ids\n", r.Pass, len(r.Written), r.IDs)
	for _, p := range r.Pages {
		fmt.Fprintf(out, "  %-22s +%d  (%s)\n", p.Page, p.Added, p.ID)
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(out, "  skipped: %s\n", strings.Join(r.Skipped, ", "))
	}
}
