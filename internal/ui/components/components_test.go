package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("Loading")
	if s.label != "Loading" {
		t.Error("Spinner label mismatch")
	}

	if !strings.Contains(s.View(), "Loading") {
		t.Error("View should include the label")
	}
	if s.Init() == nil {
		t.Error("Init should return command")
	}
	if _, cmd := s.Update(spinner.TickMsg{}); cmd == nil {
		t.Error("Update should return command for tick")
	}
}

func TestRenderSpinnerCentered(t *testing.T) {
	s := NewSpinner("Loading...")
	view := RenderSpinnerCentered(s, 20, 5)
	if lipgloss.Height(view) != 5 {
		t.Errorf("height = %d, want 5", lipgloss.Height(view))
	}
}

func TestHighlight(t *testing.T) {
	bars := []Bar{{Label: "a", Value: 5}, {Label: "b", Value: 9, Highlight: true}, {Label: "c", Value: 1}, {Label: "d", Value: 9}}

	tests := []struct {
		name string
		fn   func([]Bar) []Bar
		want int
	}{
		{"Max", HighlightMax, 1},
		{"Min", HighlightMin, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(bars)
			count := 0
			for i, b := range got {
				if b.Highlight {
					count++
					if i != tt.want {
						t.Errorf("highlighted index %d, want %d", i, tt.want)
					}
				}
			}
			if count != 1 {
				t.Errorf("%d bars highlighted, want exactly 1", count)
			}
		})
	}

	if bars[2].Highlight {
		t.Error("input slice was modified")
	}
	if got := HighlightMax(nil); len(got) != 0 {
		t.Error("empty input should stay empty")
	}
}

func TestHourAndSeasonBars(t *testing.T) {
	hb := HourBars([]models.HourCount{{Hour: 7, Count: 12}, {Hour: 17, Count: 40}})
	if hb[0].Label != "07:00" || hb[1].Label != "17:00" || hb[1].Value != 40 {
		t.Errorf("HourBars = %+v", hb)
	}

	sb := SeasonBars([]models.SeasonCount{{Season: models.SeasonWinter, Count: 3}})
	if sb[0].Label != "Winter" || sb[0].Value != 3 {
		t.Errorf("SeasonBars = %+v", sb)
	}
}

func TestRenderBarChart(t *testing.T) {
	bars := HighlightMax([]Bar{{Label: "Fall", Value: 1200}, {Label: "Summer", Value: 45000}})

	s := RenderBarChart(bars, 40)
	lines := strings.Split(s, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], "45,000") {
		t.Errorf("value should use thousands separators: %q", lines[1])
	}
	if !strings.HasPrefix(lines[0], "  Fall │") {
		t.Errorf("labels should be right-aligned: %q", lines[0])
	}
	for _, l := range lines {
		if lipgloss.Width(l) > 40 {
			t.Errorf("line wider than chart: %d", lipgloss.Width(l))
		}
	}
}

func TestRenderBarChart_Empty(t *testing.T) {
	if s := RenderBarChart(nil, 40); !strings.Contains(s, EmptyRangeText) {
		t.Errorf("empty chart = %q", s)
	}
	if s := RenderBarChart([]Bar{{Label: "x", Value: 0}}, 40); !strings.Contains(s, "x │") {
		t.Errorf("zero-value chart = %q", s)
	}
}

func TestRenderLineChart(t *testing.T) {
	if s := RenderLineChart([]float64{1, 2, 3, 4}, 20, 5, "Test"); s == "" {
		t.Error("RenderLineChart returned empty")
	}
	if s := RenderLineChart([]float64{7}, 20, 5, ""); s == "" {
		t.Error("single point should still plot")
	}
	if s := RenderLineChart(nil, 20, 5, ""); !strings.Contains(s, EmptyRangeText) {
		t.Errorf("empty chart = %q", s)
	}
}

func TestRenderTrendChart(t *testing.T) {
	s := RenderTrendChart([]float64{1, 2, 3}, []float64{3, 2}, 20, 5, "Riders")
	if !strings.Contains(s, "Riders") {
		t.Error("caption missing")
	}
	if s := RenderTrendChart(nil, nil, 20, 5, ""); !strings.Contains(s, EmptyRangeText) {
		t.Errorf("empty chart = %q", s)
	}
}

func TestDateSumValues(t *testing.T) {
	got := DateSumValues([]models.DateSum{{Sum: 3}, {Sum: 5}})
	if len(got) != 2 || got[0] != 3 || got[1] != 5 {
		t.Errorf("DateSumValues = %v", got)
	}
}

func TestRenderHourlyHeatmap(t *testing.T) {
	s := RenderHourlyHeatmap([]models.HourCount{{Hour: 8, Count: 10}, {Hour: 99, Count: 5}})
	if !strings.HasPrefix(s, "00 ") || !strings.HasSuffix(s, " 23") {
		t.Errorf("heatmap = %q", s)
	}
	if lipgloss.Width(s) != 3+24+1+3 {
		t.Errorf("width = %d", lipgloss.Width(s))
	}
}

func TestRenderSparkline(t *testing.T) {
	s := RenderSparkline([]float64{0, 4, 8}, 10)
	if s != "▁▄█" {
		t.Errorf("RenderSparkline = %q", s)
	}
	if RenderSparkline(nil, 10) != "" {
		t.Error("empty sparkline should render nothing")
	}
}

func TestRenderLegend(t *testing.T) {
	items := []LegendItem{
		{Label: "registered", Color: lipgloss.Color("#ffffff")},
		{Label: "casual", Color: lipgloss.Color("#000000")},
	}
	s := RenderLegend(items)
	if !strings.Contains(s, "registered") || !strings.Contains(s, "casual") {
		t.Errorf("RenderLegend = %q", s)
	}
}

func TestRenderMetric(t *testing.T) {
	s := RenderMetric("Total rentals", 3292679, 24, "")
	if !strings.Contains(s, "3,292,679") {
		t.Errorf("metric should use thousands separators: %q", s)
	}
	if !strings.Contains(s, "Total rentals") {
		t.Error("label missing")
	}

	if s := RenderMetric("Casual", 0, 24, "▁▂"); !strings.Contains(s, "▁▂") {
		t.Error("footer missing")
	}
}

func TestRenderShareBar(t *testing.T) {
	s := RenderShareBar(75, 25, 20)
	if !strings.Contains(s, "registered 75%") || !strings.Contains(s, "casual 25%") {
		t.Errorf("RenderShareBar = %q", s)
	}
	if s := RenderShareBar(0, 0, 20); !strings.Contains(s, EmptyRangeText) {
		t.Errorf("empty share bar = %q", s)
	}
}
