package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `language: rust

output:
  format: json
  metrics:
    - cyclomatic.sum
    - halstead.volume

discover:
  include:
    - "src/**"
  exclude:
    - "**/*_test.rs"
  gitignore: false

engine:
  strict: true

workers: 3
`
	configPath := filepath.Join(tmpDir, DefaultConfigFile+".yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	chdir(t, tmpDir)

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if cfg.Language != "rust" {
		t.Errorf("Language = %q, want %q", cfg.Language, "rust")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "json")
	}
	if len(cfg.Output.Metrics) != 2 || cfg.Output.Metrics[1] != "halstead.volume" {
		t.Errorf("Output.Metrics = %v", cfg.Output.Metrics)
	}
	if len(cfg.Discover.Include) != 1 || cfg.Discover.Include[0] != "src/**" {
		t.Errorf("Discover.Include = %v", cfg.Discover.Include)
	}
	if cfg.Discover.GitIgnore {
		t.Error("Discover.GitIgnore = true, want false")
	}
	if !cfg.Engine.Strict {
		t.Error("Engine.Strict = false, want true")
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if !strings.HasSuffix(cfg.ConfigFile, DefaultConfigFile+".yaml") {
		t.Errorf("ConfigFile = %q", cfg.ConfigFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if cfg.Language != "" {
		t.Errorf("Language = %q, want empty", cfg.Language)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}
	if len(cfg.Output.Metrics) != 4 {
		t.Errorf("Output.Metrics = %v, want 4 defaults", cfg.Output.Metrics)
	}
	if !cfg.Discover.GitIgnore {
		t.Error("Discover.GitIgnore = false, want true")
	}
	if cfg.Workers != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers = %d, want GOMAXPROCS", cfg.Workers)
	}
	if cfg.ConfigFile != "" {
		t.Errorf("ConfigFile = %q, want empty", cfg.ConfigFile)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CODEMETRICS_OUTPUT_FORMAT", "yaml")
	t.Setenv("CODEMETRICS_ENGINE_STRICT", "true")
	t.Setenv("CODEMETRICS_CACHE_DIR", "/tmp/cm-cache")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want yaml", cfg.Output.Format)
	}
	if !cfg.Engine.Strict {
		t.Error("Engine.Strict = false, want true")
	}
	if cfg.Cache.Dir != "/tmp/cm-cache" {
		t.Errorf("Cache.Dir = %q, want /tmp/cm-cache", cfg.Cache.Dir)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "known language", mutate: func(c *Config) { c.Language = "kotlin" }},
		{name: "unknown language", mutate: func(c *Config) { c.Language = "cobol" }, wantErr: "cobol"},
		{name: "unknown format", mutate: func(c *Config) { c.Output.Format = "xml" }, wantErr: "output.format"},
		{name: "unknown metric", mutate: func(c *Config) { c.Output.Metrics = []string{"loc.bogus"} }, wantErr: "loc.bogus"},
		{name: "bad glob", mutate: func(c *Config) { c.Discover.Exclude = []string{"[a"} }, wantErr: "discover"},
		{name: "negative workers", mutate: func(c *Config) { c.Workers = -1 }, wantErr: "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile+".yaml")

	cfg := Default()
	cfg.Language = "java"
	cfg.Output.Format = "toml"
	cfg.Discover.Exclude = []string{"**/generated/**"}
	cfg.Workers = 2

	if err := WriteConfig(cfg, path); err != nil {
		t.Fatalf("WriteConfig() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# CodeMetrics configuration\n") {
		t.Errorf("missing header:\n%s", data)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if loaded.Language != "java" || loaded.Output.Format != "toml" || loaded.Workers != 2 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	if len(loaded.Discover.Exclude) != 1 || loaded.Discover.Exclude[0] != "**/generated/**" {
		t.Errorf("Discover.Exclude = %v", loaded.Discover.Exclude)
	}
}
