package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/imyousuf/CodeMetrics/internal/config"
	"github.com/imyousuf/CodeMetrics/internal/report"
)

const calcPy = `def add(a, b):
    return a + b


class Calc:
    def mul(self, a, b):
        if a == 0:
            return 0
        return a * b
`

// run executes a freshly built command so flag state never leaks between tests.
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func workspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Chdir(dir)
	return dir
}

func TestLanguagesCmd(t *testing.T) {
	out, err := run(t, newLanguagesCmd())
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	for _, want := range []string{"python", "rust", "kotlin", ".rs", ".kts"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExtCmd(t *testing.T) {
	out, err := run(t, newExtCmd(), "rs")
	if err != nil {
		t.Fatalf("ext rs: %v", err)
	}
	if out != "rust\n" {
		t.Errorf("ext rs = %q, want %q", out, "rust\n")
	}

	if _, err := run(t, newExtCmd(), "zzz"); err == nil {
		t.Error("expected error for unknown extension")
	}
}

func TestAnalyzeJSON(t *testing.T) {
	workspace(t, map[string]string{"calc.py": calcPy})

	out, err := run(t, newAnalyzeCmd(), "--format", "json", "calc.py")
	if err != nil {
		t.Fatalf("analyze: %v\n%s", err, out)
	}

	var doc report.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if len(doc.Files) != 1 {
		t.Fatalf("files = %d, want 1", len(doc.Files))
	}
	root := doc.Files[0].Root
	if root == nil {
		t.Fatalf("missing root: %+v", doc.Files[0])
	}
	if root.Kind != "unit" {
		t.Errorf("root kind = %q, want unit", root.Kind)
	}
	if len(root.Spaces) != 2 {
		t.Errorf("top-level spaces = %d, want 2", len(root.Spaces))
	}
}

func TestAnalyzeKindFilter(t *testing.T) {
	workspace(t, map[string]string{"calc.py": calcPy})

	out, err := run(t, newAnalyzeCmd(), "--kind", "function", "--no-color", ".")
	if err != nil {
		t.Fatalf("analyze: %v\n%s", err, out)
	}
	if strings.Contains(out, "class ") {
		t.Errorf("kind filter kept a class:\n%s", out)
	}
	for _, name := range []string{"add", "mul"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing function %q:\n%s", name, out)
		}
	}
}

func TestAnalyzeUnknownKind(t *testing.T) {
	workspace(t, map[string]string{"calc.py": calcPy})
	if _, err := run(t, newAnalyzeCmd(), "--kind", "module", "."); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestAnalyzeReportsFailuresAfterAllFiles(t *testing.T) {
	workspace(t, map[string]string{
		"calc.py":   calcPy,
		"notes.txt": "just some prose\n",
	})

	out, err := run(t, newAnalyzeCmd(), "--no-color", "calc.py", "notes.txt")
	if err == nil {
		t.Fatal("expected error when a file fails")
	}
	if !strings.Contains(err.Error(), "1 of 2 files") {
		t.Errorf("err = %v, want a 1 of 2 summary", err)
	}
	if !strings.Contains(out, "calc.py") || !strings.Contains(out, "error:") {
		t.Errorf("report should cover both files:\n%s", out)
	}
}

func TestAnalyzeCache(t *testing.T) {
	dir := workspace(t, map[string]string{"calc.py": calcPy})
	cacheDir := filepath.Join(dir, "cache")

	first, err := run(t, newAnalyzeCmd(), "--format", "json", "--cache-dir", cacheDir, "calc.py")
	if err != nil {
		t.Fatalf("first analyze: %v", err)
	}
	second, err := run(t, newAnalyzeCmd(), "--format", "json", "--cache-dir", cacheDir, "calc.py")
	if err != nil {
		t.Fatalf("second analyze: %v", err)
	}
	if first != second {
		t.Errorf("cached report differs:\nfirst:\n%s\nsecond:\n%s", first, second)
	}

	out, err := run(t, newCacheCmd(), "stats", "--dir", cacheDir)
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	if !strings.Contains(out, "1 cached results") {
		t.Errorf("cache stats = %q", out)
	}

	if _, err := run(t, newCacheCmd(), "clear", "--dir", cacheDir); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	out, err = run(t, newCacheCmd(), "stats", "--dir", cacheDir)
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	if !strings.Contains(out, "0 cached results") {
		t.Errorf("cache stats after clear = %q", out)
	}
}

func TestInitYes(t *testing.T) {
	dir := workspace(t, nil)

	if _, err := run(t, newInitCmd(), "--yes"); err != nil {
		t.Fatalf("init: %v", err)
	}
	path := filepath.Join(dir, ".codemetrics.yaml")
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}

	if _, err := run(t, newInitCmd(), "--yes"); err == nil {
		t.Error("expected error when the config file already exists")
	}
}

func TestPrintConfig(t *testing.T) {
	var buf bytes.Buffer
	printConfig(&buf, config.Default())
	out := buf.String()
	for _, want := range []string{"Config file", "(inferred per file)", "Format", "text", "(disabled)"} {
		if !strings.Contains(out, want) {
			t.Errorf("config view missing %q:\n%s", want, out)
		}
	}
}

func TestWatchRoots(t *testing.T) {
	dir := workspace(t, map[string]string{"src/calc.py": calcPy})

	got := watchRoots([]string{".", "src/calc.py", "src/**/*.py", filepath.Join(dir, "src")})
	want := []string{".", "src", filepath.Join(dir, "src")}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("watchRoots = %v, want %v", got, want)
	}
}

func TestDetectLanguages(t *testing.T) {
	dir := workspace(t, map[string]string{
		"main.rs":           "fn main() {}\n",
		"lib/util.py":       "x = 1\n",
		"a/b/c/deep.kt":     "fun f() {}\n",
		"node_modules/x.js": "var x;\n",
	})
	got := detectLanguages(dir)
	if strings.Join(got, ",") != "python,rust" {
		t.Errorf("detectLanguages = %v, want [python rust]", got)
	}
}
