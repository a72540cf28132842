package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/anchore/distroglyph/distroglyph/glyph"
	"github.com/anchore/distroglyph/distroglyph/match"
)

var matchCmd = &cobra.Command{
	Use:   "match [NAME]",
	Short: "show how a distro name matches the glyph table (the cache is not used)",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := distroName(appConfig, afero.NewOsFs(), args)
		if err != nil {
			return err
		}
		table, err := glyph.Default()
		if err != nil {
			return err
		}
		return presentMatch(cmd.OutOrStdout(), table, name)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func presentMatch(out io.Writer, table *glyph.Table, name string) error {
	result, err := match.Match(table, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Input:      %s\n", name)
	fmt.Fprintf(out, "Normalized: %s\n", match.Normalize(name))
	fmt.Fprintf(out, "Matched:    %s (key=%q rule=%s)\n", result.Entry.Name, result.Entry.Key, result.Rule)
	fmt.Fprintf(out, "Glyph:      %s\n", result.Entry.Glyph)

	if others := match.Candidates(table, result.Rule, name); len(others) > 1 {
		fmt.Fprintf(out, "Candidates: %v\n", others)
	}
	return nil
}
