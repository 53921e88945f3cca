package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/imyousuf/CodeMetrics/internal/metrics"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

func name(s string) *string { return &s }

func sampleTree() *space.Node {
	area := space.New(space.NodeSpec{
		Name: name("area"), StartLine: 2, EndLine: 3, Kind: space.Function,
		Metrics: metrics.CodeMetrics{Cyclomatic: metrics.Cyclomatic{Sum: 2}},
	})
	shape := space.New(space.NodeSpec{
		Name: name("Shape"), StartLine: 1, EndLine: 3, Kind: space.Class,
		Metrics:  metrics.CodeMetrics{Cyclomatic: metrics.Cyclomatic{Sum: 3}},
		Children: []*space.Node{area},
	})
	return space.New(space.NodeSpec{
		Name: name("shape.py"), StartLine: 1, EndLine: 3, Kind: space.Unit,
		Metrics:  metrics.CodeMetrics{Cyclomatic: metrics.Cyclomatic{Sum: 4}, MI: metrics.MaintainabilityIndex{VisualStudio: 61.5}},
		Children: []*space.Node{shape},
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteText(t *testing.T) {
	doc := Document{Files: []File{
		NewFile("shape.py", sampleTree(), nil),
		Failed("broken.py", errors.New("boom")),
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, Options{Format: FormatText}))
	out := buf.String()

	assert.Contains(t, out, "shape.py")
	assert.Contains(t, out, "Shape [1-3]")
	assert.Contains(t, out, "area [2-3]")
	assert.Contains(t, out, "cyclomatic.sum=4")
	assert.Contains(t, out, "mi.mi_visual_studio=61.50")
	assert.Contains(t, out, "error: boom")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var areaLine string
	for _, l := range lines {
		if strings.Contains(l, "area") {
			areaLine = l
		}
	}
	assert.True(t, strings.HasPrefix(areaLine, "      function"), "functions are indented under their class: %q", areaLine)
}

func TestWriteTextKindFilter(t *testing.T) {
	kind := space.Function
	doc := Document{Files: []File{NewFile("shape.py", sampleTree(), &kind)}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, Options{Metrics: []string{"cyclomatic.sum"}}))
	out := buf.String()

	assert.Contains(t, out, "area")
	assert.NotContains(t, out, "Shape")
	assert.Contains(t, out, "cyclomatic.sum=2")
}

func TestWriteJSON(t *testing.T) {
	doc := Document{Files: []File{NewFile("shape.py", sampleTree(), nil)}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, Options{Format: FormatJSON}))

	var decoded Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Files, 1)
	root := decoded.Files[0].Root
	require.NotNil(t, root)
	assert.Equal(t, "unit", root.Kind)
	assert.Equal(t, sampleTree().Digest(), root.Node().Digest())
}

func TestWriteYAML(t *testing.T) {
	doc := Document{Files: []File{NewFile("shape.py", sampleTree(), nil)}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, Options{Format: FormatYAML}))
	assert.Contains(t, buf.String(), "mi_visual_studio: 61.5")

	var decoded Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Files, 1)
	assert.Equal(t, "Shape", decoded.Files[0].Root.Spaces[0].Name)
}

func TestWriteTOML(t *testing.T) {
	doc := Document{Files: []File{NewFile("shape.py", sampleTree(), nil)}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, Options{Format: FormatTOML}))

	var decoded Document
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Files, 1)
	assert.Equal(t, "shape.py", decoded.Files[0].Path)
	assert.Equal(t, 4.0, decoded.Files[0].Root.Metrics.Cyclomatic.Sum)
}

func TestValidateMetrics(t *testing.T) {
	assert.NoError(t, ValidateMetrics(DefaultMetrics))
	err := ValidateMetrics([]string{"loc.sloc", "loc.nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loc.nope")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "3", formatValue(3))
	assert.Equal(t, "0.25", formatValue(0.25))
}
