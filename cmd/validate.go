package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conneroisu/pencraft/internal/errors"
	"github.com/conneroisu/pencraft/internal/services"
)

var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"v"},
	Short:   "Check the document without changing it",
	Long: `Load the document and run the checks every write makes: it must encode,
decode back, and carry no duplicate ids. Also reports duplicate page names,
configured pages missing from the document, and ledger entries for unknown
sections.

--bands estimates each page's content height and warns when it reaches
into the next page's band.

Exits non-zero when any error is found.

Examples:
  pencraft validate
  pencraft validate --bands -o json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var (
	validateBands  bool
	validateFormat string
)

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateBands, "bands", false, "Warn about pages whose content outgrows the tiling band")
	AddOutputFlag(validateCmd, &validateFormat, "text", "json", "yaml")
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	report, err := a.service.Check(cmd.Context(), services.CheckOptions{Bands: validateBands})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch validateFormat {
	case "json":
		err = writeJSON(out, report)
	case "yaml":
		err = writeYAML(out, report)
	default:
		printReport(out, report)
	}
	if err != nil {
		return err
	}

	if report.HasErrors() {
		return errors.NewValidationError(errors.ErrCodeValidationFailed,
			fmt.Sprintf("%d problems found in %s", report.Count(errors.SeverityError), report.Path)).
			WithFile(report.Path)
	}
	return nil
}

func printReport(out io.Writer, r *services.Report) {
	fmt.Fprintf(out, "%s: %s shape, %d pages, %d nodes, %d bytes\n", r.Path, r.Shape, r.Pages, r.Nodes, r.Bytes)
	for _, f := range r.Findings {
		fmt.Fprintf(out, "  %s\n", f.Error())
	}
	fmt.Fprintf(out, "%d errors, %d warnings\n", r.Count(errors.SeverityError), r.Count(errors.SeverityWarning))
}
