// Package discover expands command-line paths, directories and globs into
// the source files to analyze.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/imyousuf/CodeMetrics/internal/lang"
)

// Config controls which files a directory walk or glob yields.
type Config struct {
	// Include keeps only files matching one of these doublestar patterns,
	// relative to the walked directory. Empty keeps every supported file.
	Include []string
	// Exclude drops files matching any of these doublestar patterns.
	Exclude []string
	// GitIgnore honors the .gitignore at the root of each walked directory.
	GitIgnore bool
}

var skipDirs = map[string]struct{}{
	"__pycache__":  {},
	"node_modules": {},
	"target":       {},
	"vendor":       {},
	"venv":         {},
	"build":        {},
	"dist":         {},
}

// SkipDir reports whether a directory walk never descends into name.
func SkipDir(name string) bool {
	_, skip := skipDirs[name]
	return skip || strings.HasPrefix(name, ".")
}

// Validate reports malformed patterns.
func (c Config) Validate() error {
	for _, p := range append(append([]string{}, c.Include...), c.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	return nil
}

// Files resolves each argument to a sorted, de-duplicated list of files.
// A regular file is returned as given, even with an unknown extension, so
// the caller can report why it could not be analyzed. Directories are walked
// and globs expanded, keeping only files with a supported extension.
func Files(args []string, cfg Config) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, arg := range args {
		if containsGlob(arg) {
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("expanding %q: %w", arg, err)
			}
			for _, m := range matches {
				if supported(m) && !excluded(cfg.Exclude, filepath.ToSlash(m)) {
					add(m)
				}
			}
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		files, err := walk(arg, cfg)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			add(f)
		}
	}

	sort.Strings(out)
	return out, nil
}

func walk(root string, cfg Config) ([]string, error) {
	var gi *ignore.GitIgnore
	if cfg.GitIgnore {
		gi = loadGitignore(root)
	}

	var results []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}
			if SkipDir(name) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || d.Type()&os.ModeSymlink != 0 {
			return nil
		}
		if !supported(name) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		if len(cfg.Include) > 0 && !matchAny(cfg.Include, rel) {
			return nil
		}
		if excluded(cfg.Exclude, rel) {
			return nil
		}

		results = append(results, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return results, nil
}

func supported(path string) bool {
	_, ok := lang.ForExtension(filepath.Ext(path))
	return ok
}

func excluded(patterns []string, rel string) bool {
	return matchAny(patterns, rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
