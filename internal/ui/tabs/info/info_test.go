package info

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/analysis"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/app"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/config"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/services"
)

func day(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testState() *app.State {
	span := models.DateRange{Start: day("2011-01-01"), End: day("2012-12-31")}
	state := app.NewState()
	state.SetBounds(span)
	state.SetSourceInfo(services.SourceInfo{
		Kind:      config.SourceCSV,
		Name:      "csv (day.csv, hour.csv)",
		DayCount:  731,
		HourCount: 17379,
		Span:      span,
		HourSpan:  span,
		Seasons:   []models.Season{models.SeasonFall, models.SeasonSpring},
	})
	return state
}

func TestModel_Init(t *testing.T) {
	m := New(app.NewState(), nil)
	if m.Init() != nil {
		t.Error("Init should return nil")
	}
}

func TestModel_View(t *testing.T) {
	cfg := &config.Config{
		Source:   config.SourceCSV,
		DayFile:  "day.csv",
		HourFile: "hour.csv",
		LogFile:  "bikeshare.log",
		LogLevel: "info",
	}
	m := New(testState(), cfg)
	m.SetSize(120, 80)

	view := m.View()
	for _, want := range []string{
		"csv (day.csv, hour.csv)",
		"731", "17,379",
		"2011-01-01 → 2012-12-31",
		"Fall, Spring",
		"Day file:", "hour.csv",
		"Log level:",
		"About Bike Share Dashboard",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
	if strings.Contains(view, "Computed:") {
		t.Error("no report has been computed yet")
	}
}

func TestModel_ViewSelectedRange(t *testing.T) {
	state := testState()
	r := models.DateRange{Start: day("2011-03-01"), End: day("2011-03-31")}
	state.SetReport(analysis.Report{Range: r})

	m := New(state, &config.Config{Source: config.SourceSQLite, DatabasePath: "bikeshare.db"})
	m.SetSize(120, 80)

	view := m.View()
	for _, want := range []string{"2011-03-01 → 2011-03-31", "Computed:", "Database:", "bikeshare.db"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
	if strings.Contains(view, "Day file:") {
		t.Error("sqlite configuration should not list CSV files")
	}
}

func TestModel_ViewNoData(t *testing.T) {
	m := New(app.NewState(), nil)
	m.SetSize(120, 80)

	view := m.View()
	if !strings.Contains(view, "No data loaded") || !strings.Contains(view, "Configuration not loaded") {
		t.Errorf("View = %q", view)
	}
}

func TestModel_Update(t *testing.T) {
	m := New(testState(), nil)
	m.SetSize(120, 8)
	_ = m.View()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if updated != m {
		t.Error("Update should return the same model")
	}
	if m.viewport.YOffset != 1 {
		t.Errorf("YOffset = %d, want 1", m.viewport.YOffset)
	}
}

func TestModel_Help(t *testing.T) {
	m := New(app.NewState(), nil)
	if len(m.ShortHelp()) != 2 || len(m.FullHelp()) != 1 {
		t.Error("unexpected help bindings")
	}
}
