package report

import (
	"fmt"
	"math"
	"strings"

	"statlab/internal/permutation"
	"statlab/internal/qq"
	"statlab/internal/stats"
)

// SummaryTable renders rows of named descriptive summaries, one line per
// group, in the column order n/mean/sd/min/q1/median/q3/max.
func SummaryTable(names []string, summaries []stats.Summary) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-14s %6s %10s %10s %10s %10s %10s %10s %10s",
		"group", "n", "mean", "sd", "min", "q1", "median", "q3", "max")))
	b.WriteString("\n")
	for i, s := range summaries {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		line := fmt.Sprintf("%-14s %6d %10.2f %10.2f %10.2f %10.2f %10.2f %10.2f %10.2f",
			name, s.N, s.Mean, s.StdDev, s.Min, s.Q1, s.Median, s.Q3, s.Max)
		b.WriteString(cellStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// Histogram renders an ASCII histogram of values with the given number of
// bins, each bar scaled to width characters.
func Histogram(values []float64, bins, width int) string {
	if len(values) == 0 || bins <= 0 {
		return mutedStyle.Render("(no data)")
	}
	if width <= 0 {
		width = 40
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		hi = lo + 1
	}
	counts := make([]int, bins)
	binWidth := (hi - lo) / float64(bins)
	for _, v := range values {
		i := int((v - lo) / binWidth)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	var b strings.Builder
	for i, c := range counts {
		barLen := 0
		if maxCount > 0 {
			barLen = c * width / maxCount
		}
		label := fmt.Sprintf("%9.2f │", lo+(float64(i)+0.5)*binWidth)
		b.WriteString(mutedStyle.Render(label))
		b.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		b.WriteString(fmt.Sprintf(" %d\n", c))
	}
	return b.String()
}

// QQPlot renders an ASCII scatter of QQ points with the identity line, the
// terminal stand-in for qqnorm + abline(0, 1).
func QQPlot(points []qq.Point, width, height int) string {
	if len(points) == 0 {
		return mutedStyle.Render("(no data)")
	}
	if width <= 0 {
		width = 60
	}
	if height <= 0 {
		height = 20
	}

	minX, maxX := points[0].Theoretical, points[0].Theoretical
	minY, maxY := points[0].Empirical, points[0].Empirical
	for _, p := range points {
		minX = math.Min(minX, p.Theoretical)
		maxX = math.Max(maxX, p.Theoretical)
		minY = math.Min(minY, p.Empirical)
		maxY = math.Max(maxY, p.Empirical)
	}
	// Shared bounds keep the identity line at 45 degrees.
	lo := math.Min(minX, minY)
	hi := math.Max(maxX, maxY)
	if lo == hi {
		hi = lo + 1
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}
	col := func(x float64) int {
		c := int((x - lo) / (hi - lo) * float64(width-1))
		if c < 0 {
			c = 0
		}
		if c >= width {
			c = width - 1
		}
		return c
	}
	row := func(y float64) int {
		r := height - 1 - int((y-lo)/(hi-lo)*float64(height-1))
		if r < 0 {
			r = 0
		}
		if r >= height {
			r = height - 1
		}
		return r
	}
	// Identity line first so points overwrite it.
	for c := 0; c < width; c++ {
		x := lo + float64(c)/float64(width-1)*(hi-lo)
		grid[row(x)][c] = '.'
	}
	for _, p := range points {
		grid[row(p.Empirical)][col(p.Theoretical)] = '●'
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("empirical quantiles vs theoretical (%.2f .. %.2f)", lo, hi)))
	b.WriteString("\n")
	for _, r := range grid {
		b.WriteString("  ")
		b.WriteString(string(r))
		b.WriteString("\n")
	}
	return b.String()
}

// PermResult renders one permutation test outcome.
func PermResult(res *permutation.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("permutation test"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  observed mean difference: %s\n", valueStyle.Render(fmt.Sprintf("%.4f", res.Observed)))
	fmt.Fprintf(&b, "  alternative:              %s\n", string(res.Alternative))
	fmt.Fprintf(&b, "  permutations:             %d (%d at least as extreme)\n", res.Permutations, res.Extreme)
	fmt.Fprintf(&b, "  p-value:                  %s\n", valueStyle.Render(fmt.Sprintf("%.4f", res.PValue)))
	fmt.Fprintf(&b, "  p-value (+1 smoothing):   %s\n", valueStyle.Render(fmt.Sprintf("%.4f", res.SmoothedPValue)))
	fmt.Fprintf(&b, "  null: mean %.4f, sd %.4f, range [%.4f, %.4f], p95 %.4f, p99 %.4f\n",
		res.Null.Mean, res.Null.StdDev, res.Null.Min, res.Null.Max,
		res.Null.Percentile95, res.Null.Percentile99)
	if res.PValue == 0 {
		b.WriteString(warnStyle.Render("  note: zero extreme shuffles; report the smoothed estimate"))
		b.WriteString("\n")
	}
	return b.String()
}
