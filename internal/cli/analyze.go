package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/imyousuf/CodeMetrics/internal/analyzer"
	"github.com/imyousuf/CodeMetrics/internal/batch"
	"github.com/imyousuf/CodeMetrics/internal/cache"
	"github.com/imyousuf/CodeMetrics/internal/config"
	"github.com/imyousuf/CodeMetrics/internal/discover"
	"github.com/imyousuf/CodeMetrics/internal/engine"
	"github.com/imyousuf/CodeMetrics/internal/report"
	"github.com/imyousuf/CodeMetrics/internal/space"
	"github.com/imyousuf/CodeMetrics/internal/watch"
)

type analyzeFlags struct {
	language string
	format   string
	kind     string
	metrics  []string
	strict   bool
	workers  int
	cacheDir string
	watch    bool
	noColor  bool
}

func newAnalyzeCmd() *cobra.Command {
	var f analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze [paths|globs...]",
		Short: "Analyze source files",
		Long: `Analyze source files and print a metrics report for each.

Arguments may be files, directories (walked recursively, honoring .gitignore
and the discover settings) or doublestar globs such as "src/**/*.rs". With no
arguments the current directory is analyzed.

Files that fail are reported and the command exits non-zero once every file
has been processed. With --watch the command keeps running and reports on
files as they change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.language, "language", "l", "", "force the language instead of inferring it")
	flags.StringVarP(&f.format, "format", "f", "", "output format: "+strings.Join(report.Formats(), ", "))
	flags.StringVarP(&f.kind, "kind", "k", "", "list only regions of this kind: "+kindNames())
	flags.StringSliceVarP(&f.metrics, "metrics", "m", nil, "metric keys shown in text output, e.g. loc.sloc")
	flags.BoolVar(&f.strict, "strict", false, "fail on files with syntax errors")
	flags.IntVarP(&f.workers, "workers", "j", 0, "files analyzed concurrently")
	flags.StringVar(&f.cacheDir, "cache-dir", "", "reuse results for unchanged files from this directory")
	flags.BoolVarP(&f.watch, "watch", "w", false, "re-analyze files as they change")
	flags.BoolVar(&f.noColor, "no-color", false, "disable colored text output")

	return cmd
}

func kindNames() string {
	names := make([]string, 0, len(space.Kinds()))
	for _, k := range space.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

// analysis holds what a single run needs, so watch mode can repeat it.
type analysis struct {
	cfg      *config.Config
	format   report.Format
	kind     *space.Kind
	color    bool
	analyzer batch.FileAnalyzer
	opts     []analyzer.Option
	logFn    func(format string, args ...any)
}

func runAnalyze(cmd *cobra.Command, args []string, f analyzeFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyAnalyzeFlags(cmd, cfg, f)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	var kind *space.Kind
	if f.kind != "" {
		k, ok := space.ParseKind(f.kind)
		if !ok {
			return fmt.Errorf("unknown kind %q (want one of %s)", f.kind, kindNames())
		}
		kind = &k
	}

	if len(args) == 0 {
		args = []string{"."}
	}
	paths, err := discover.Files(args, cfg.DiscoverConfig())
	if err != nil {
		return fmt.Errorf("discover files: %w", err)
	}
	if len(paths) == 0 && !f.watch {
		return fmt.Errorf("no supported source files found")
	}

	errOut := cmd.ErrOrStderr()
	logFn := func(msg string, a ...any) {
		fmt.Fprintf(errOut, msg+"\n", a...)
	}

	eng := engine.New(engine.Config{Strict: cfg.Engine.Strict, Verbose: verbose, Logger: logFn})
	inner := analyzer.New(analyzer.Config{Engine: eng, Verbose: verbose, Logger: logFn})
	run := &analysis{
		cfg:      cfg,
		format:   format,
		kind:     kind,
		color:    !f.noColor,
		analyzer: inner,
		logFn:    logFn,
	}
	if cfg.Language != "" {
		run.opts = append(run.opts, analyzer.WithLanguage(cfg.Language))
	}

	if cfg.Cache.Dir != "" {
		store, err := cache.Open(cfg.Cache.Dir)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer store.Close()
		cached := cache.NewAnalyzer(cache.Config{
			Store:    store,
			Analyzer: inner,
			Variant:  cache.Variant(cfg.Language, cfg.Engine.Strict),
			Verbose:  verbose,
			Logger:   logFn,
		})
		run.analyzer = cached
		defer func() {
			if verbose {
				logFn("cache: %d hits, %d misses", cached.Hits(), cached.Misses())
			}
		}()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	failed, err := run.report(ctx, cmd, paths)
	if err != nil {
		return err
	}
	if f.watch {
		return run.watch(ctx, cmd, args)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be analyzed", failed, len(paths))
	}
	return nil
}

// report analyzes paths and writes one report document. It returns the number
// of files that failed.
func (a *analysis) report(ctx context.Context, cmd *cobra.Command, paths []string) (int, error) {
	runner := batch.New(batch.Config{
		Analyzer: a.analyzer,
		Workers:  a.cfg.Workers,
		Options:  a.opts,
		Verbose:  verbose,
		Logger:   a.logFn,
	})
	results, err := runner.Run(ctx, paths)
	if err != nil {
		return 0, err
	}

	doc := report.Document{Files: make([]report.File, 0, len(results))}
	for _, res := range results {
		if res.Err != nil {
			doc.Files = append(doc.Files, report.Failed(res.Path, res.Err))
			continue
		}
		file := report.NewFile(res.Path, res.Root, a.kind)
		file.Language = a.cfg.Language
		doc.Files = append(doc.Files, file)
	}

	if err := report.Write(cmd.OutOrStdout(), doc, report.Options{
		Format:  a.format,
		Metrics: a.cfg.Output.Metrics,
		Kind:    a.kind,
		Color:   a.color,
	}); err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}
	return runner.Stats().FilesFailed, nil
}

// watch re-analyzes changed files that the arguments still select until
// interrupted.
func (a *analysis) watch(ctx context.Context, cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := watch.New(watch.Config{Roots: watchRoots(args), Verbose: verbose, Logger: a.logFn})
	if err != nil {
		return err
	}
	defer w.Close()

	a.logFn("Watching for changes (Ctrl+C to stop)...")
	return w.Run(ctx, func(changed []string) {
		selected, err := discover.Files(args, a.cfg.DiscoverConfig())
		if err != nil {
			a.logFn("discover files: %v", err)
			return
		}
		keep := make(map[string]struct{}, len(selected))
		for _, p := range selected {
			keep[filepath.Clean(p)] = struct{}{}
		}
		var paths []string
		for _, p := range changed {
			if _, ok := keep[p]; ok {
				paths = append(paths, p)
			}
		}
		if len(paths) == 0 {
			return
		}
		if _, err := a.report(ctx, cmd, paths); err != nil {
			a.logFn("%v", err)
		}
	})
}

// watchRoots maps analyze arguments to the directories that contain them.
func watchRoots(args []string) []string {
	seen := make(map[string]struct{})
	var roots []string
	for _, arg := range args {
		root := arg
		if strings.ContainsAny(arg, "*?[{") {
			root, _ = doublestar.SplitPattern(filepath.ToSlash(arg))
			root = filepath.FromSlash(root)
		} else if info, err := os.Stat(arg); err == nil && !info.IsDir() {
			root = filepath.Dir(arg)
		}
		root = filepath.Clean(root)
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		roots = append(roots, root)
	}
	return roots
}

// applyAnalyzeFlags lets explicitly set flags override the loaded configuration.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *config.Config, f analyzeFlags) {
	flags := cmd.Flags()
	if flags.Changed("language") {
		cfg.Language = f.language
	}
	if flags.Changed("format") {
		cfg.Output.Format = f.format
	}
	if flags.Changed("metrics") {
		cfg.Output.Metrics = f.metrics
	}
	if flags.Changed("strict") {
		cfg.Engine.Strict = f.strict
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("cache-dir") {
		cfg.Cache.Dir = f.cacheDir
	}
}
