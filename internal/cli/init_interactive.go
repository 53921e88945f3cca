package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/imyousuf/CodeMetrics/internal/config"
	"github.com/imyousuf/CodeMetrics/internal/lang"
	"github.com/imyousuf/CodeMetrics/internal/metrics"
	"github.com/imyousuf/CodeMetrics/internal/report"
)

// detectLanguages walks rootDir (depth-limited to 2 levels) and returns the
// languages whose extensions appear in it.
func detectLanguages(rootDir string) []string {
	found := make(map[string]bool)

	rootDepth := strings.Count(filepath.ToSlash(rootDir), "/")
	_ = filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		depth := strings.Count(filepath.ToSlash(path), "/") - rootDepth
		if d.IsDir() {
			if depth >= 2 {
				return fs.SkipDir
			}
			switch d.Name() {
			case ".git", "node_modules", "vendor", "__pycache__", "dist", "build", "target":
				return fs.SkipDir
			}
			return nil
		}
		if l, ok := lang.ForExtension(filepath.Ext(path)); ok {
			found[string(l)] = true
		}
		return nil
	})

	result := make([]string, 0, len(found))
	for l := range found {
		result = append(result, l)
	}
	sort.Strings(result)
	return result
}

// runInteractiveInit fills cfg from the TUI wizard. It reports false when the
// user cancels.
func runInteractiveInit(cmd *cobra.Command, cwd string, cfg *config.Config) (bool, error) {
	out := cmd.OutOrStdout()

	detected := detectLanguages(cwd)

	var (
		language  = cfg.Language
		format    = cfg.Output.Format
		selected  = cfg.Output.Metrics
		gitignore = cfg.Discover.GitIgnore
		strict    = cfg.Engine.Strict
		confirm   bool
	)
	// A single detected language is a safe default for the override.
	if len(detected) == 1 {
		language = detected[0]
	}

	langOptions := []huh.Option[string]{huh.NewOption("Infer from each file", "")}
	for _, name := range lang.SupportedLanguages() {
		label := name
		for _, d := range detected {
			if d == name {
				label += " (detected)"
			}
		}
		langOptions = append(langOptions, huh.NewOption(label, name))
	}

	formatOptions := make([]huh.Option[string], 0, len(report.Formats()))
	for _, f := range report.Formats() {
		formatOptions = append(formatOptions, huh.NewOption(f, f))
	}

	defaults := make(map[string]bool, len(selected))
	for _, k := range selected {
		defaults[k] = true
	}
	metricOptions := make([]huh.Option[string], 0, len(metrics.Keys()))
	for _, k := range metrics.Keys() {
		metricOptions = append(metricOptions, huh.NewOption(k, k).Selected(defaults[k]))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Language").
				Description("Force one language for every file, or infer it").
				Options(langOptions...).
				Value(&language),
			huh.NewConfirm().
				Title("Fail on syntax errors?").
				Description("Strict mode rejects files whose parse tree contains errors").
				Value(&strict).
				Affirmative("Yes").
				Negative("No"),
		).Title("Analysis"),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(formatOptions...).
				Value(&format),
			huh.NewMultiSelect[string]().
				Title("Metrics shown in text reports").
				Options(metricOptions...).
				Value(&selected).
				Filterable(true).
				Height(16).
				Validate(func(keys []string) error {
					if len(keys) == 0 {
						return errors.New("select at least one metric")
					}
					return nil
				}),
		).Title("Output"),

		huh.NewGroup(
			huh.NewConfirm().
				Title("Honor .gitignore files?").
				Value(&gitignore).
				Affirmative("Yes").
				Negative("No"),
		).Title("Discovery"),

		huh.NewGroup(
			huh.NewNote().
				Title("Summary").
				DescriptionFunc(func() string {
					langStr := language
					if langStr == "" {
						langStr = "(inferred)"
					}
					return fmt.Sprintf(
						"Language:   %s\n"+
							"Strict:     %v\n"+
							"Format:     %s\n"+
							"Metrics:    %d selected\n"+
							"Gitignore:  %v",
						langStr, strict, format, len(selected), gitignore,
					)
				}, &selected),
			huh.NewConfirm().
				Title("Write configuration?").
				Value(&confirm).
				Affirmative("Write").
				Negative("Cancel"),
		).Title("Confirm"),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(out, "Cancelled.")
			return false, nil
		}
		return false, fmt.Errorf("interactive init: %w", err)
	}
	if !confirm {
		fmt.Fprintln(out, "Cancelled.")
		return false, nil
	}

	cfg.Language = language
	cfg.Engine.Strict = strict
	cfg.Output.Format = format
	cfg.Output.Metrics = selected
	cfg.Discover.GitIgnore = gitignore
	return true, nil
}
