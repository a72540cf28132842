package cmd

import (
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "inspect the glyph cache",
}

func init() {
	rootCmd.AddCommand(cacheCmd)
}
