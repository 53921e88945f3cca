package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imyousuf/CodeMetrics/internal/lang"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported languages",
		Long: `List the language names accepted by --language, each with the file
extensions it is inferred from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range lang.SupportedLanguages() {
				exts := lang.FileExtensions[lang.Language(name)]
				fmt.Fprintf(out, "%-12s %s\n", name, strings.Join(exts, " "))
			}
			return nil
		},
	}
}

func newExtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ext <extension>",
		Short: "Map a file extension to its language",
		Long: `Print the language a bare file extension (without the dot, e.g. "rs")
maps to. Exits non-zero when the extension is not recognized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := lang.FromExtension(args[0])
			if !ok {
				return fmt.Errorf("no language for extension %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}
