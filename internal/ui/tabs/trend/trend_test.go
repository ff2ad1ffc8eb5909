package trend

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/analysis"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/app"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/dataset"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

func day(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Days: []models.DailyRecord{
			{Date: day("2011-01-01"), Casual: 331, Registered: 654, Total: 985, Season: models.SeasonSpring},
			{Date: day("2011-01-02"), Casual: 131, Registered: 670, Total: 801, Season: models.SeasonSpring},
			{Date: day("2011-01-03"), Casual: 120, Registered: 1229, Total: 1349, Season: models.SeasonSpring},
		},
		Hours: []models.HourlyRecord{
			{Date: day("2011-01-01"), Hour: 8, Total: 120, Season: models.SeasonSpring},
			{Date: day("2011-01-02"), Hour: 17, Total: 300, Season: models.SeasonSpring},
			{Date: day("2011-01-03"), Hour: 3, Total: 4, Season: models.SeasonSpring},
		},
	}
}

func newTestModel() (*Model, *app.State) {
	state := app.NewState()
	state.SetBounds(testDataset().Bounds())
	m := New(state)
	m.SetSize(120, 60)
	return m, state
}

func TestModel_ViewLoading(t *testing.T) {
	m, _ := newTestModel()
	if m.Init() == nil {
		t.Error("Init should start the spinner")
	}
	if !strings.Contains(m.View(), "Computing report") {
		t.Error("View should show the spinner before the first report")
	}
}

func TestModel_View(t *testing.T) {
	m, state := newTestModel()
	state.SetReport(analysis.Compute(testDataset(), state.Bounds()))

	view := m.View()
	for _, want := range []string{
		"Trend",
		"2011-01-01 → 2011-01-03",
		"Riders per day",
		"registered", "casual",
		"Busiest day:", "Mon Jan 3, 2011", "1,349",
		"Hourly pattern",
		"17:00-18:00",
		"Quietest: 03:00 (4)",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestModel_ViewEmptyRange(t *testing.T) {
	m, state := newTestModel()
	r := models.DateRange{Start: day("2012-01-01"), End: day("2012-02-01")}
	state.SetReport(analysis.Compute(testDataset(), r))

	view := m.View()
	if !strings.Contains(view, "No data in range") {
		t.Errorf("empty range should say so, got %q", view)
	}
	if strings.Contains(view, "Riders per day") {
		t.Error("charts should not render for an empty range")
	}
}

func TestModel_Scroll(t *testing.T) {
	m, state := newTestModel()
	m.SetSize(120, 10)
	state.SetReport(analysis.Compute(testDataset(), state.Bounds()))
	_ = m.View()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.viewport.YOffset != 1 {
		t.Errorf("YOffset = %d after j, want 1", m.viewport.YOffset)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if m.viewport.YOffset != 0 {
		t.Errorf("g should return to the top, YOffset = %d", m.viewport.YOffset)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(app.ReportUpdatedMsg{})
	if m.viewport.YOffset != 0 {
		t.Error("a new report should reset the scroll position")
	}
}

func TestModel_Help(t *testing.T) {
	m, _ := newTestModel()
	if len(m.ShortHelp()) != 2 {
		t.Errorf("ShortHelp = %d bindings", len(m.ShortHelp()))
	}
	if len(m.FullHelp()) != 2 {
		t.Errorf("FullHelp = %d groups", len(m.FullHelp()))
	}
}
