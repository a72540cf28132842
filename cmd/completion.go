package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anchore/distroglyph/distroglyph/glyph"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate a shell completion for distroglyph (listing supported distro names)",
	Long: `To load completions:

Bash:

$ source <(distroglyph completion bash)

# To load completions for each session, execute once:
Linux:
  $ distroglyph completion bash > /etc/bash_completion.d/distroglyph
MacOS:
  $ distroglyph completion bash > /usr/local/etc/bash_completion.d/distroglyph

Zsh:

# If shell completion is not already enabled in your environment you will need
# to enable it.  You can execute the following once:

$ echo "autoload -U compinit; compinit" >> ~/.zshrc

# To load completions for each session, execute once:
$ distroglyph completion zsh > "${fpath[1]}/_distroglyph"

Fish:

$ distroglyph completion fish | source
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.ExactValidArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		}
		return fmt.Errorf("unsupported shell: %s", args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
	rootCmd.ValidArgsFunction = completeDistroNames
	matchCmd.ValidArgsFunction = completeDistroNames
}

// completeDistroNames offers the display names of the glyph table.
func completeDistroNames(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	table, err := glyph.Default()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	prefix := glyph.FoldKey(toComplete)
	for _, e := range table.Entries() {
		if strings.HasPrefix(e.Key, prefix) {
			names = append(names, e.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
