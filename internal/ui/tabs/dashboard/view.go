package dashboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/analysis"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/styles"
)

// narrowWidth is the width below which the hour charts stack vertically.
const narrowWidth = 90

// View renders the dashboard component.
func (m *Model) View() string {
	rep, ok := m.state.Report()
	if !ok {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		m.picker.View(),
		"",
		m.renderMetrics(rep),
		m.renderShare(rep),
		m.renderHourCharts(rep),
		m.renderSeasonChart(rep),
	)

	m.viewport.SetContent(content)

	return styles.DocStyle.Render(m.viewport.View())
}

func (m *Model) contentWidth() int {
	return max(m.viewport.Width-2, 40)
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Bike Share Dashboard")
	subtitle := styles.HelpStyle.Render("Rentals by date, hour and season")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderMetrics(rep analysis.Report) string {
	cardWidth := max((m.contentWidth()-6)/3, 16)
	sparkWidth := max(cardWidth-4, 4)

	totals := lo.Map(rep.Days, func(d models.DailyRecord, _ int) float64 { return float64(d.Total) })

	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.RenderMetric("Total rentals", rep.Metrics.TotalRentals, cardWidth,
			components.RenderSparkline(totals, sparkWidth)),
		" ",
		components.RenderMetric("Registered riders", rep.Metrics.TotalRegistered, cardWidth,
			lipgloss.NewStyle().Foreground(styles.Registered).Render(
				components.RenderSparkline(components.DateSumValues(rep.Registered), sparkWidth))),
		" ",
		components.RenderMetric("Casual riders", rep.Metrics.TotalCasual, cardWidth,
			lipgloss.NewStyle().Foreground(styles.Casual).Render(
				components.RenderSparkline(components.DateSumValues(rep.Casual), sparkWidth))),
	)
}

func (m *Model) renderShare(rep analysis.Report) string {
	bar := components.RenderShareBar(rep.Metrics.TotalRegistered, rep.Metrics.TotalCasual, m.contentWidth()-4)
	return styles.CardStyle.Width(m.contentWidth()).Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, styles.CardTitleStyle.Render("Rider mix"), bar),
	)
}

func (m *Model) renderHourCharts(rep analysis.Report) string {
	width := m.contentWidth()
	cardWidth := width
	if width >= narrowWidth {
		cardWidth = (width - 5) / 2
	}
	chartWidth := max(cardWidth-6, 20)

	busiest := chartCard(
		fmt.Sprintf("Busiest hours (top %d)", analysis.TopHours),
		components.RenderBarChart(components.HighlightMax(components.HourBars(rep.Busiest)), chartWidth),
		cardWidth,
	)
	slice := chartCard(
		fmt.Sprintf("Hour slice (first %d by hour)", analysis.BottomHours),
		components.RenderBarChart(components.HighlightMin(components.HourBars(rep.BottomSlice)), chartWidth),
		cardWidth,
	)

	if width < narrowWidth {
		return lipgloss.JoinVertical(lipgloss.Left, busiest, slice)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, busiest, " ", slice)
}

func (m *Model) renderSeasonChart(rep analysis.Report) string {
	width := m.contentWidth()
	return chartCard(
		"Rentals by season",
		components.RenderBarChart(components.HighlightMax(components.SeasonBars(rep.SeasonsChart)), max(width-6, 20)),
		width,
	)
}

func chartCard(title, body string, width int) string {
	return styles.CardStyle.Width(width).Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, styles.CardTitleStyle.Render(title), body),
	)
}
