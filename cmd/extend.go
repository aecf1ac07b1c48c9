package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/pencraft/internal/services"
)

var extendCmd = &cobra.Command{
	Use:     "extend <pass>",
	Aliases: []string{"x"},
	Short:   "Run one generation pass on the existing document",
	Long: `Run a named pass against the existing document. Sections the ledger
already records are skipped, so a pass can be re-run safely. A pass whose
prerequisites have not run is refused.

--force rebuilds recorded sections and skips the prerequisite check.

Examples:
  pencraft extend base
  pencraft extend components-1
  pencraft extend components-2 --force`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		a, err := loadApp(cmd)
		if err != nil || len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return a.passes.Names(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runExtend,
}

var extendForce bool

func init() {
	rootCmd.AddCommand(extendCmd)
	extendCmd.Flags().BoolVarP(&extendForce, "force", "f", false, "Rebuild recorded sections and ignore prerequisites")
}

func runExtend(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	result, err := a.service.Extend(cmd.Context(), services.ExtendOptions{
		Pass:  args[0],
		Force: extendForce,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printRun(out, result)
	if result.Changed() {
		fmt.Fprintf(out, "Wrote %s\n", a.service.Store().Path())
	}
	return nil
}
