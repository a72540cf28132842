package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/anchore/distroglyph/distroglyph/glyph"
)

var listOutputFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the distro names that have a glyph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		table, err := glyph.Default()
		if err != nil {
			return err
		}
		return presentEntries(cmd.OutOrStdout(), listOutputFormat, table.Entries())
	},
}

func init() {
	listCmd.Flags().StringVarP(&listOutputFormat, "output", "o", "table", "format to list glyphs with (available=[table, json])")

	rootCmd.AddCommand(listCmd)
}

type entryJSON struct {
	Name  string `json:"name"`
	Key   string `json:"key"`
	Glyph string `json:"glyph"`
}

func presentEntries(out io.Writer, format string, entries []glyph.Entry) error {
	switch format {
	case "table":
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Name, e.Key, e.Glyph})
		}

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Name", "Key", "Glyph"})
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetAutoFormatHeaders(true)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetTablePadding("  ")
		table.SetNoWhiteSpace(true)

		table.AppendBulk(rows)
		table.Render()
	case "json":
		doc := make([]entryJSON, 0, len(entries))
		for _, e := range entries {
			doc = append(doc, entryJSON{Name: e.Name, Key: e.Key, Glyph: e.Glyph})
		}
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", " ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode glyph list: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return nil
}
