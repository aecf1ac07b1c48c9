package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:     "sections",
	Aliases: []string{"s"},
	Short:   "List the registered section builders",
	Long: `List every section pencraft can build, with its page, id prefix and
the pass that writes it.

Examples:
  pencraft sections
  pencraft sections -o json`,
	Args: cobra.NoArgs,
	RunE: runSections,
}

var sectionsFormat string

// sectionRow is one line of the sections listing.
type sectionRow struct {
	Key         string `json:"key" yaml:"key"`
	Title       string `json:"title" yaml:"title"`
	Page        string `json:"page" yaml:"page"`
	Prefix      string `json:"prefix" yaml:"prefix"`
	Pass        string `json:"pass,omitempty" yaml:"pass,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	AddOutputFlag(sectionsCmd, &sectionsFormat, "table", "json", "yaml")
}

func runSections(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	owner := make(map[string]string)
	for _, p := range a.passes.All() {
		for _, key := range p.Sections() {
			if _, ok := owner[key]; !ok {
				owner[key] = p.Name
			}
		}
	}

	infos := a.sections.GetAll()
	rows := make([]sectionRow, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, sectionRow{
			Key:         info.Key,
			Title:       info.Title,
			Page:        info.Page,
			Prefix:      info.Prefix,
			Pass:        owner[info.Key],
			Description: info.Description,
		})
	}

	out := cmd.OutOrStdout()
	switch sectionsFormat {
	case "json":
		return writeJSON(out, rows)
	case "yaml":
		return writeYAML(out, rows)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tTITLE\tPAGE\tPREFIX\tPASS")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Key, r.Title, r.Page, r.Prefix, r.Pass)
	}
	return w.Flush()
}
