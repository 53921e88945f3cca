// Package report renders analyzed space trees as text, JSON, YAML or TOML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"github.com/imyousuf/CodeMetrics/internal/metrics"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

// Format is an output format name.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists every supported output format.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML), string(FormatTOML)}
}

// ParseFormat validates a format name. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(Formats(), ", "))
}

// DefaultMetrics are the metric keys shown by the text renderer.
var DefaultMetrics = []string{"cyclomatic.sum", "cognitive.sum", "loc.sloc", "mi.mi_visual_studio"}

// Options controls rendering.
type Options struct {
	Format Format
	// Metrics are the flattened metric keys printed per node in text output.
	Metrics []string
	// Kind limits the report to a flat list of regions of that kind.
	Kind *space.Kind
	// Color enables lipgloss styling in text output.
	Color bool
}

// File is the report of one analyzed file.
type File struct {
	Path     string           `json:"path" yaml:"path" toml:"path"`
	Language string           `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty"`
	Error    string           `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
	Root     *space.Snapshot  `json:"root,omitempty" yaml:"root,omitempty" toml:"root,omitempty"`
	Spaces   []space.Snapshot `json:"spaces,omitempty" yaml:"spaces,omitempty" toml:"spaces,omitempty"`

	node *space.Node
}

// NewFile builds the report of one file. With a kind filter, only the matching
// regions are kept, each without its children.
func NewFile(path string, root *space.Node, kind *space.Kind) File {
	f := File{Path: path, node: root}
	if root == nil {
		return f
	}
	if kind == nil {
		snap := root.Snapshot()
		f.Root = &snap
		return f
	}
	for _, n := range space.SelectByKind(root, *kind) {
		snap := n.Snapshot()
		snap.Spaces = nil
		f.Spaces = append(f.Spaces, snap)
	}
	return f
}

// Failed builds the report of a file that could not be analyzed.
func Failed(path string, err error) File {
	return File{Path: path, Error: err.Error()}
}

// Document is a batch of file reports.
type Document struct {
	Files []File `json:"files" yaml:"files" toml:"files"`
}

// Write renders doc to w.
func Write(w io.Writer, doc Document, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	case FormatText, "":
		return writeText(w, doc, opts)
	}
	return fmt.Errorf("unknown output format %q", opts.Format)
}

// ValidateMetrics rejects metric keys that do not exist.
func ValidateMetrics(keys []string) error {
	known := make(map[string]bool)
	for _, k := range metrics.Keys() {
		known[k] = true
	}
	var unknown []string
	for _, k := range keys {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown metric keys: %s", strings.Join(unknown, ", "))
	}
	return nil
}
