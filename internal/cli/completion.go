package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/meetlayout/pkg/layout"
)

// completionCommand generates shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for meetlayout.

  $ source <(meetlayout completion bash)
  $ meetlayout completion zsh > "${fpath[1]}/_meetlayout"
  $ meetlayout completion fish > ~/.config/fish/completions/meetlayout.fish
  PS> meetlayout completion powershell | Out-String | Invoke-Expression

Device class flags complete to the known classes.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// completeDeviceClass offers device class names for --device.
func completeDeviceClass(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, d := range layout.DeviceClasses() {
		names = append(names, d.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
