package info

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/config"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/styles"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		m.renderDataCard(),
		m.renderConfigCard(),
		m.renderAboutCard(),
	)

	m.viewport.SetContent(content)

	return styles.DocStyle.Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Data source, configuration and build information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	return min(max(m.viewport.Width-2, 50), 80)
}

func (m *Model) renderDataCard() string {
	src := m.state.SourceInfo()

	rows := []string{styles.CardTitleStyle.Render("Data")}
	if src.DayCount == 0 && src.HourCount == 0 {
		rows = append(rows, styles.HelpStyle.Render("No data loaded"))
	} else {
		seasons := lo.Map(src.Seasons, func(s models.Season, _ int) string { return s.String() })
		rows = append(rows,
			renderRow("Source", src.Name),
			renderRow("Daily records", humanize.Comma(int64(src.DayCount))),
			renderRow("Hourly records", humanize.Comma(int64(src.HourCount))),
			renderRow("Daily span", src.Span.String()),
			renderRow("Hourly span", src.HourSpan.String()),
			renderRow("Seasons", strings.Join(seasons, ", ")),
		)
	}

	rows = append(rows, "", renderRow("Selected range", m.state.Range().String()))
	if updated := m.state.LastUpdated(); !updated.IsZero() {
		rows = append(rows, renderRow("Computed", humanize.Time(updated)))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderConfigCard() string {
	rows := []string{styles.CardTitleStyle.Render("Configuration")}

	if m.config != nil {
		if m.config.Source == config.SourceSQLite {
			rows = append(rows, renderRow("Database", m.config.DatabasePath))
		} else {
			rows = append(rows,
				renderRow("Day file", m.config.DayFile),
				renderRow("Hour file", m.config.HourFile),
			)
		}
		rows = append(rows,
			renderRow("Log file", m.config.LogFile),
			renderRow("Log level", m.config.LogLevel),
		)
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderAboutCard() string {
	rows := []string{
		styles.CardTitleStyle.Render("About Bike Share Dashboard"),
		renderRow("Version", version.GetVersion()),
		renderRow("Build Date", version.GetDate()),
		renderRow("Git Commit", version.GetCommit()),
		renderRow("Go Version", runtime.Version()),
		renderRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)),
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderRow renders a key-value row.
func renderRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}
