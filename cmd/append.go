package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/pencraft/internal/services"
)

var appendCmd = &cobra.Command{
	Use:     "append <section>...",
	Aliases: []string{"a"},
	Short:   "Append sections to the document outside any pass",
	Long: `Build the named sections and append them, in order, to the end of their
pages. Each section goes to its registered page unless --page names
another. Appends ignore the ledger: the same section can be added twice,
each copy with fresh ids.

Examples:
  pencraft append card
  pencraft append card data-table --page "Data Display"`,
	Args: cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		a, err := loadApp(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return a.sections.Keys(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runAppend,
}

var appendPage string

func init() {
	rootCmd.AddCommand(appendCmd)
	appendCmd.Flags().StringVarP(&appendPage, "page", "p", "", "Target page for every section")
}

func runAppend(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	result, err := a.service.Append(cmd.Context(), services.AppendOptions{
		Sections: args,
		Page:     appendPage,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printRun(out, result)
	fmt.Fprintf(out, "Wrote %s\n", a.service.Store().Path())
	return nil
}
