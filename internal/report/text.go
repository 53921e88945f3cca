package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imyousuf/CodeMetrics/internal/space"
)

type styles struct {
	file   lipgloss.Style
	kind   lipgloss.Style
	name   lipgloss.Style
	lines  lipgloss.Style
	metric lipgloss.Style
	err    lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain}
	}
	return styles{
		file: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}),
		kind:   lipgloss.NewStyle().Faint(true),
		name:   lipgloss.NewStyle().Bold(true),
		lines:  lipgloss.NewStyle().Faint(true),
		metric: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}),
		err:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"}),
	}
}

func writeText(w io.Writer, doc Document, opts Options) error {
	keys := opts.Metrics
	if len(keys) == 0 {
		keys = DefaultMetrics
	}
	st := newStyles(opts.Color)

	for i, f := range doc.Files {
		if i > 0 {
			fmt.Fprintln(w)
		}
		header := f.Path
		if f.Language != "" {
			header += " (" + f.Language + ")"
		}
		fmt.Fprintln(w, st.file.Render(header))

		if f.Error != "" {
			fmt.Fprintf(w, "  %s\n", st.err.Render("error: "+f.Error))
			continue
		}

		switch {
		case f.Root != nil && f.node != nil:
			space.Walk(f.node, func(n *space.Node, depth int) bool {
				fmt.Fprintln(w, textLine(st, n, depth, keys))
				return true
			})
		case f.Root != nil:
			writeSnapshot(w, st, *f.Root, 0, keys)
		default:
			if len(f.Spaces) == 0 {
				fmt.Fprintln(w, "  (no matching spaces)")
			}
			for _, s := range f.Spaces {
				writeSnapshot(w, st, s, 0, keys)
			}
		}
	}
	return nil
}

// writeSnapshot renders a snapshot that has no live node behind it.
func writeSnapshot(w io.Writer, st styles, s space.Snapshot, depth int, keys []string) {
	fmt.Fprintln(w, textLine(st, s.Node(), depth, keys))
	for _, c := range s.Spaces {
		writeSnapshot(w, st, c, depth+1, keys)
	}
}

func textLine(st styles, n *space.Node, depth int, keys []string) string {
	name, ok := n.Name()
	if !ok {
		name = "<anonymous>"
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth+1))
	b.WriteString(st.kind.Render(fmt.Sprintf("%-9s", n.Kind())))
	b.WriteString(" ")
	b.WriteString(st.name.Render(name))
	b.WriteString(" ")
	b.WriteString(st.lines.Render(fmt.Sprintf("[%d-%d]", n.StartLine(), n.EndLine())))

	m := n.Metrics()
	for _, k := range keys {
		v, ok := m.Lookup(k)
		if !ok {
			continue
		}
		b.WriteString("  ")
		b.WriteString(st.metric.Render(k + "=" + formatValue(v)))
	}
	return b.String()
}

// formatValue prints whole numbers without decimals.
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
