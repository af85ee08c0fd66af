package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"statlab/internal/store"
)

// RunMarkdown builds a markdown report for a persisted run.
func RunMarkdown(run *store.Run, values []float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Study run `%s`\n\n", run.ID)
	fmt.Fprintf(&b, "- **kind**: %s\n", run.Kind)
	fmt.Fprintf(&b, "- **seed**: %d\n", run.Seed)
	fmt.Fprintf(&b, "- **created**: %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- **replications stored**: %d\n", len(values))

	if len(run.Params) > 0 {
		b.WriteString("\n## Parameters\n\n")
		for _, k := range sortedKeys(run.Params) {
			fmt.Fprintf(&b, "- **%s**: %v\n", k, run.Params[k])
		}
	}

	if len(run.Summary) > 0 {
		b.WriteString("\n## Summary\n\n| statistic | value |\n|---|---|\n")
		keys := make([]string, 0, len(run.Summary))
		for k := range run.Summary {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "| %s | %.6g |\n", k, run.Summary[k])
		}
	}
	return b.String()
}

// RenderMarkdown renders markdown for the terminal.
func RenderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
