package trend

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/analysis"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/styles"
)

const chartHeight = 8

// View renders the trend tab.
func (m *Model) View() string {
	rep, ok := m.state.Report()
	if !ok {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}
	if rep.IsEmpty() {
		return m.renderEmpty(rep)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(rep),
		m.renderRiderTrend(rep),
		m.renderHourlyProfile(rep),
	)
	m.viewport.SetContent(content)

	return styles.DocStyle.Render(m.viewport.View())
}

func (m *Model) cardWidth() int {
	return max(m.viewport.Width-2, 40)
}

func (m *Model) renderEmpty(rep analysis.Report) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Trend"),
		"",
		styles.HelpStyle.Render(components.EmptyRangeText+": "+rep.Range.String()),
		styles.HelpStyle.Render("Pick another range on the dashboard."),
	)
	return styles.DocStyle.Render(content)
}

func (m *Model) renderHeader(rep analysis.Report) string {
	title := styles.TitleStyle.Render("Trend")
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("%s (%d days, %s hourly rows)",
		rep.Range.String(), rep.Range.Days(), humanize.Comma(int64(len(rep.Hours)))))
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderRiderTrend(rep analysis.Report) string {
	width := m.cardWidth()
	rows := []string{styles.CardTitleStyle.Render("Riders per day"), ""}

	chart := components.RenderTrendChart(
		components.DateSumValues(rep.Registered),
		components.DateSumValues(rep.Casual),
		max(width-20, 20), chartHeight,
		fmt.Sprintf("%d days", len(rep.Registered)),
	)
	rows = append(rows, indent(chart)...)

	rows = append(rows,
		"",
		"  "+components.RenderLegend([]components.LegendItem{
			{Label: "registered", Color: styles.Registered},
			{Label: "casual", Color: styles.Casual},
		}),
	)

	if peak, ok := busiestDay(rep.Days); ok {
		rows = append(rows, fmt.Sprintf("  Busiest day: %s (%s rentals)",
			lipgloss.NewStyle().Bold(true).Foreground(styles.Primary).
				Render(peak.Date.Format("Mon Jan 2, 2006")),
			humanize.Comma(int64(peak.Total)),
		))
	}

	return styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) renderHourlyProfile(rep analysis.Report) string {
	width := m.cardWidth()
	rows := []string{styles.CardTitleStyle.Render("Hourly pattern"), ""}

	var profile [24]float64
	for _, c := range rep.HourlySummary {
		if c.Hour >= 0 && c.Hour < 24 {
			profile[c.Hour] = float64(c.Count)
		}
	}
	var data []float64
	if len(rep.HourlySummary) > 0 {
		data = profile[:]
	}

	chart := components.RenderLineChart(data, max(width-20, 20), chartHeight, "Rentals by hour of day")
	rows = append(rows, indent(chart)...)
	rows = append(rows, "", "  "+components.RenderHourlyHeatmap(rep.HourlySummary))

	if peak, ok := models.PeakHour(rep.HourlySummary); ok {
		quiet, _ := models.QuietestHour(rep.HourlySummary)
		rows = append(rows, fmt.Sprintf("  Peak: %s (%s)  Quietest: %02d:00 (%s)",
			lipgloss.NewStyle().Bold(true).Foreground(styles.Primary).
				Render(fmt.Sprintf("%02d:00-%02d:00", peak.Hour, (peak.Hour+1)%24)),
			humanize.Comma(int64(peak.Count)),
			quiet.Hour,
			humanize.Comma(int64(quiet.Count)),
		))
	}

	return styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func indent(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		out = append(out, "  "+line)
	}
	return out
}

func busiestDay(days []models.DailyRecord) (models.DailyRecord, bool) {
	if len(days) == 0 {
		return models.DailyRecord{}, false
	}
	best := days[0]
	for _, d := range days[1:] {
		if d.Total > best.Total {
			best = d
		}
	}
	return best, true
}
