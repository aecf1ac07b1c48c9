package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/pencraft/internal/errors"
	"github.com/conneroisu/pencraft/internal/store"
)

var pagesCmd = &cobra.Command{
	Use:     "pages",
	Aliases: []string{"p"},
	Short:   "List the pages in the document",
	Long: `List every top-level page with its id, canvas position, size and node
count. The document is read without decoding its node tree, so this works
on documents pencraft cannot otherwise load.

Examples:
  pencraft pages
  pencraft pages -o yaml`,
	Args: cobra.NoArgs,
	RunE: runPages,
}

var pagesAddCmd = &cobra.Command{
	Use:   "add <name>...",
	Short: "Add empty pages below the existing ones",
	Long: `Append empty pages to the document, tiled one band below the lowest
existing page. Names already in use are refused.

Examples:
  pencraft pages add Marketing Charts`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPagesAdd,
}

var pagesFormat string

func init() {
	rootCmd.AddCommand(pagesCmd)
	pagesCmd.AddCommand(pagesAddCmd)
	AddOutputFlag(pagesCmd, &pagesFormat, "table", "json", "yaml")
}

func runPages(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	data, err := a.service.Store().Read()
	if err != nil {
		return err
	}
	summary, err := store.Inspect(data)
	if err != nil {
		return errors.ErrMalformedDocument(a.service.Store().Path(), err)
	}

	out := cmd.OutOrStdout()
	switch pagesFormat {
	case "json":
		return writeJSON(out, summary)
	case "yaml":
		return writeYAML(out, summary)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tID\tX\tY\tSIZE\tCHILDREN\tNODES")
	for _, p := range summary.Pages {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%sx%s\t%d\t%d\n",
			p.Name, p.ID, p.X, p.Y, p.Width, p.Height, p.Children, p.Nodes)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d pages, %d nodes, %s shape", len(summary.Pages), summary.TotalNode, summary.Shape)
	if summary.LastPass != "" {
		fmt.Fprintf(out, ", last pass %s", summary.LastPass)
	}
	fmt.Fprintln(out)
	return nil
}

func runPagesAdd(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	updates, err := a.service.AddPages(cmd.Context(), args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, u := range updates {
		fmt.Fprintf(out, "Added page %s (%s)\n", u.Page, u.ID)
	}
	return nil
}
