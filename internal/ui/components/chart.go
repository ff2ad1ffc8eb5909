// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/styles"
)

// EmptyRangeText is shown in place of a chart when the range selects nothing.
const EmptyRangeText = "No data in range"

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label     string
	Value     int
	Highlight bool
}

// HourBars labels hourly counts as "HH:00".
func HourBars(counts []models.HourCount) []Bar {
	bars := make([]Bar, len(counts))
	for i, c := range counts {
		bars[i] = Bar{Label: fmt.Sprintf("%02d:00", c.Hour), Value: c.Count}
	}
	return bars
}

// SeasonBars labels season counts with the season name.
func SeasonBars(counts []models.SeasonCount) []Bar {
	bars := make([]Bar, len(counts))
	for i, c := range counts {
		bars[i] = Bar{Label: c.Season.String(), Value: c.Count}
	}
	return bars
}

// HighlightMax marks the first bar holding the largest value and clears the rest.
func HighlightMax(bars []Bar) []Bar {
	return highlightWhere(bars, func(v, best int) bool { return v > best })
}

// HighlightMin marks the first bar holding the smallest value and clears the rest.
func HighlightMin(bars []Bar) []Bar {
	return highlightWhere(bars, func(v, best int) bool { return v < best })
}

func highlightWhere(bars []Bar, better func(v, best int) bool) []Bar {
	out := make([]Bar, len(bars))
	copy(out, bars)
	if len(out) == 0 {
		return out
	}

	idx := 0
	for i := range out {
		out[i].Highlight = false
		if better(out[i].Value, out[idx].Value) {
			idx = i
		}
	}
	out[idx].Highlight = true
	return out
}

// RenderBarChart creates a horizontal bar chart. Highlighted bars use the accent
// colour, the rest are gray.
func RenderBarChart(bars []Bar, width int) string {
	if len(bars) == 0 {
		return styles.HelpStyle.Render(EmptyRangeText)
	}

	maxVal := 0
	maxLabelLen := 0
	maxValueLen := 0
	values := make([]string, len(bars))
	for i, b := range bars {
		maxVal = max(maxVal, b.Value)
		maxLabelLen = max(maxLabelLen, lipgloss.Width(b.Label))
		values[i] = humanize.Comma(int64(b.Value))
		maxValueLen = max(maxValueLen, len(values[i]))
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Leave room for label, separator and value
	barWidth := max(width-maxLabelLen-maxValueLen-4, 10)

	lines := make([]string, 0, len(bars))
	for i, b := range bars {
		barLen := max(b.Value*barWidth/maxVal, 0)
		if b.Value > 0 && barLen == 0 {
			barLen = 1
		}

		label := fmt.Sprintf("%*s", maxLabelLen, b.Label)
		bar := styles.BarStyle(b.Highlight).Render(strings.Repeat("█", barLen))
		lines = append(lines, label+" │"+bar+" "+values[i])
	}

	return strings.Join(lines, "\n")
}

// RenderLineChart creates a single-series ASCII line chart.
func RenderLineChart(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return styles.HelpStyle.Render(EmptyRangeText)
	}

	// Ensure minimum dimensions
	width = max(width, 20)
	height = max(height, 3)

	return asciigraph.Plot(plottable(data),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue),
	)
}

// RenderTrendChart plots registered and casual riders per date on one graph.
func RenderTrendChart(registered, casual []float64, width, height int, caption string) string {
	if len(registered) == 0 && len(casual) == 0 {
		return styles.HelpStyle.Render(EmptyRangeText)
	}

	// Ensure minimum dimensions
	width = max(width, 20)
	height = max(height, 3)

	// Normalize lengths - pad shorter series with zeros
	n := max(len(registered), len(casual))
	reg := make([]float64, n)
	cas := make([]float64, n)
	copy(reg, registered)
	copy(cas, casual)

	return asciigraph.PlotMany([][]float64{plottable(reg), plottable(cas)},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(
			asciigraph.Blue,
			asciigraph.Red,
		),
	)
}

// plottable repeats a lone point so the graph has a segment to draw.
func plottable(data []float64) []float64 {
	if len(data) == 1 {
		return []float64{data[0], data[0]}
	}
	return data
}

// DateSumValues extracts the sums of a per-date table for plotting.
func DateSumValues(sums []models.DateSum) []float64 {
	out := make([]float64, len(sums))
	for i, s := range sums {
		out[i] = float64(s.Sum)
	}
	return out
}

// HeatmapBlocks are Unicode block characters for heatmaps (low to high intensity).
var HeatmapBlocks = []rune{'░', '▒', '▓', '█'}

// RenderHourlyHeatmap creates a 24-hour intensity strip. Hours absent from counts
// render at the lowest intensity.
func RenderHourlyHeatmap(counts []models.HourCount) string {
	var patterns [24]int
	for _, c := range counts {
		if c.Hour >= 0 && c.Hour < 24 {
			patterns[c.Hour] = c.Count
		}
	}

	maxVal := 0
	for _, v := range patterns {
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var result strings.Builder
	result.WriteString("00 ")

	for i, v := range patterns {
		intensity := min(v*(len(HeatmapBlocks)-1)/maxVal, len(HeatmapBlocks)-1)

		var style lipgloss.Style
		switch intensity {
		case 0:
			style = lipgloss.NewStyle().Foreground(styles.Subtle)
		case 1:
			style = lipgloss.NewStyle().Foreground(styles.Success)
		case 2:
			style = lipgloss.NewStyle().Foreground(styles.Warning)
		default:
			style = lipgloss.NewStyle().Foreground(styles.Error)
		}

		result.WriteString(style.Render(string(HeatmapBlocks[intensity])))

		// Add gap at noon for readability
		if i == 11 {
			result.WriteString(" ")
		}
	}

	result.WriteString(" 23")
	return result.String()
}

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline creates a compact inline sparkline chart.
func RenderSparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Sample values to fit width
	var result strings.Builder
	step := max(float64(len(values))/float64(width), 1)

	for i := 0; i < width && int(float64(i)*step) < len(values); i++ {
		val := values[int(float64(i)*step)]
		normalized := int((val / maxVal) * float64(len(sparkChars)-1))
		normalized = min(max(normalized, 0), len(sparkChars)-1)
		result.WriteRune(sparkChars[normalized])
	}

	return result.String()
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}
