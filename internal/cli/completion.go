package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for CodeMetrics.

Subcommands:
  bash      Print bash completion script to stdout
  zsh       Print zsh completion script to stdout`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for CodeMetrics.

To load completions in your current shell session:
  source <(codemetrics completion bash)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true); err != nil {
				return fmt.Errorf("failed to generate bash completion: %w", err)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "zsh",
		Short: "Generate zsh completion script",
		Long: `Generate zsh completion script for CodeMetrics.

To load completions in your current shell session:
  source <(codemetrics completion zsh)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to generate zsh completion: %w", err)
			}
			return nil
		},
	})

	return cmd
}
