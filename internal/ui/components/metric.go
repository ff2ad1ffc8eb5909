package components

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/styles"
)

// RenderMetric renders a card with a caption over a thousands-separated figure.
// An optional footer such as a sparkline goes under the figure.
func RenderMetric(label string, value, width int, footer string) string {
	rows := []string{
		styles.MetricLabelStyle.Render(label),
		styles.MetricValueStyle.Render(humanize.Comma(int64(value))),
	}
	if footer != "" {
		rows = append(rows, footer)
	}

	return styles.CardStyle.
		Width(max(width, 16)).
		Padding(0, 1).
		MarginBottom(0).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderShareBar shows the registered share of all riders as a two-tone bar with
// the percentage split underneath.
func RenderShareBar(registered, casual, width int) string {
	total := registered + casual
	if total == 0 {
		return styles.HelpStyle.Render(EmptyRangeText)
	}

	share := float64(registered) / float64(total)
	bar := progress.New(
		progress.WithSolidFill(string(styles.Registered)),
		progress.WithWidth(max(width, 10)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(styles.Casual)

	caption := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Foreground(styles.Registered).Render(
			"registered "+humanize.FtoaWithDigits(share*100, 1)+"%"),
		"  ",
		lipgloss.NewStyle().Foreground(styles.Casual).Render(
			"casual "+humanize.FtoaWithDigits((1-share)*100, 1)+"%"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, bar.ViewAs(share), caption)
}
