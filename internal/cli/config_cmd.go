package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/imyousuf/CodeMetrics/internal/config"
)

// Style definitions for config view.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"})
	labelStyle = lipgloss.NewStyle().
			Faint(true).
			Width(18)
	valueStyle = lipgloss.NewStyle()
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the CodeMetrics configuration after merging defaults, the config
file and CODEMETRICS_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: runConfigView,
	}
}

func runConfigView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	printConfig(cmd.OutOrStdout(), cfg)
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out)

	// Title
	fmt.Fprintln(out, headerStyle.Render("CodeMetrics Configuration"))
	fmt.Fprintln(out, headerStyle.Render(strings.Repeat("=", 25)))
	fmt.Fprintln(out)

	source := cfg.ConfigFile
	if source == "" {
		source = "(defaults, no config file)"
	}
	printKV(out, "Config file", source)
	fmt.Fprintln(out)

	printSection(out, "Analysis")
	language := cfg.Language
	if language == "" {
		language = "(inferred per file)"
	}
	printKV(out, "Language", language)
	printKV(out, "Strict", boolYesNo(cfg.Engine.Strict))
	printKV(out, "Workers", strconv.Itoa(cfg.Workers))
	cacheDir := cfg.Cache.Dir
	if cacheDir == "" {
		cacheDir = "(disabled)"
	}
	printKV(out, "Cache", cacheDir)
	fmt.Fprintln(out)

	printSection(out, "Output")
	printKV(out, "Format", cfg.Output.Format)
	printKV(out, "Metrics", strings.Join(cfg.Output.Metrics, ", "))
	fmt.Fprintln(out)

	printSection(out, "Discovery")
	printKV(out, "Gitignore", boolYesNo(cfg.Discover.GitIgnore))
	printList(out, "Include", cfg.Discover.Include)
	printList(out, "Exclude", cfg.Discover.Exclude)
	fmt.Fprintln(out)
}

func printSection(out io.Writer, title string) {
	fmt.Fprintf(out, "  %s\n", headerStyle.Render(title))
}

func printKV(out io.Writer, label, value string) {
	fmt.Fprintf(out, "    %s%s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

func printList(out io.Writer, label string, items []string) {
	if len(items) == 0 {
		printKV(out, label, "(none)")
		return
	}
	printKV(out, label, items[0])
	for _, it := range items[1:] {
		printKV(out, "", it)
	}
}

func boolYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
