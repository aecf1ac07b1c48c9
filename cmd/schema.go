package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conneroisu/pencraft/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the design document",
	Long: `Emit a JSON Schema (draft 2020-12) describing the documents pencraft
writes: frame, text and icon nodes, in either the array or the ledger
object shape.

Examples:
  pencraft schema
  pencraft schema --out schema/document.schema.json`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

var schemaOut string

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVar(&schemaOut, "out", "", "Write the schema to a file instead of stdout")
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := schema.Marshal()
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')

	if schemaOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(schemaOut), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(schemaOut), err)
	}
	if err := os.WriteFile(schemaOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", schemaOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", schemaOut)
	return nil
}
