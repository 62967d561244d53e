package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for bash, zsh or fish.

To load completions:

Bash:

  $ source <(branding completion bash)

Zsh:

  $ branding completion zsh > "${fpath[1]}/_branding"

Fish:

  $ branding completion fish > ~/.config/fish/completions/branding.fish

You will need to start a new shell for this setup to take effect.`,
	ValidArgs: []string{"bash", "zsh", "fish"},
	Args:      usageArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
	RunE:      runCompletion,
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func runCompletion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch args[0] {
	case "bash":
		return cmd.Root().GenBashCompletion(out)
	case "zsh":
		return cmd.Root().GenZshCompletion(out)
	case "fish":
		return cmd.Root().GenFishCompletion(out, true)
	default:
		return &usageError{err: fmt.Errorf("unsupported shell: %s", args[0])}
	}
}
