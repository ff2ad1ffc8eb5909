package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

func day(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testBounds() models.DateRange {
	return models.DateRange{Start: day("2011-01-01"), End: day("2012-12-31")}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and returns the resulting command unexecuted, since the text
// input's cursor commands block on a blink timer.
func press(t *testing.T, p DateRangePicker, msg tea.KeyMsg) (DateRangePicker, tea.Cmd) {
	t.Helper()
	return p.Update(msg)
}

// pressMsg sends a key and runs the resulting picker command.
func pressMsg(t *testing.T, p DateRangePicker, msg tea.KeyMsg) (DateRangePicker, tea.Msg) {
	t.Helper()
	p, cmd := p.Update(msg)
	if cmd == nil {
		return p, nil
	}
	return p, cmd()
}

func TestNewDateRangePicker(t *testing.T) {
	p := NewDateRangePicker(testBounds())

	if p.Range() != testBounds() {
		t.Errorf("default range = %v, want full span", p.Range())
	}
	if p.Focused() != FieldStart || p.Editing() {
		t.Error("picker should start on the start field, not editing")
	}
	if !strings.Contains(p.View(), "2011-01-01") || !strings.Contains(p.View(), "731 days") {
		t.Errorf("View = %q", p.View())
	}
}

func TestDateRangePicker_Movement(t *testing.T) {
	tests := []struct {
		name      string
		keys      []tea.KeyMsg
		wantStart string
		wantEnd   string
	}{
		{"NextDay", []tea.KeyMsg{{Type: tea.KeyRight}}, "2011-01-02", "2012-12-31"},
		{"NextDayVim", []tea.KeyMsg{runes("l"), runes("l")}, "2011-01-03", "2012-12-31"},
		{"NextWeek", []tea.KeyMsg{{Type: tea.KeyDown}}, "2011-01-08", "2012-12-31"},
		{"NextMonth", []tea.KeyMsg{{Type: tea.KeyPgDown}}, "2011-01-31", "2012-12-31"},
		{"StartClampedToBounds", []tea.KeyMsg{{Type: tea.KeyLeft}}, "2011-01-01", "2012-12-31"},
		{"EndBack", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyUp}}, "2011-01-01", "2012-12-24"},
		{"EndClampedToBounds", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyPgDown}}, "2011-01-01", "2012-12-31"},
		{"StartToEnd", []tea.KeyMsg{{Type: tea.KeyEnd}}, "2012-12-31", "2012-12-31"},
		{"EndToStart", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyHome}}, "2011-01-01", "2011-01-01"},
		{"Reset", []tea.KeyMsg{{Type: tea.KeyPgDown}, {Type: tea.KeyTab}, {Type: tea.KeyPgUp}, runes("x")}, "2011-01-01", "2012-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewDateRangePicker(testBounds())
			for _, k := range tt.keys {
				p, _ = press(t, p, k)
			}
			r := p.Range()
			if got := r.Start.Format(models.DateLayout); got != tt.wantStart {
				t.Errorf("Start = %s, want %s", got, tt.wantStart)
			}
			if got := r.End.Format(models.DateLayout); got != tt.wantEnd {
				t.Errorf("End = %s, want %s", got, tt.wantEnd)
			}
		})
	}
}

func TestDateRangePicker_StartNeverPassesEnd(t *testing.T) {
	p := NewDateRangePicker(models.DateRange{Start: day("2011-01-01"), End: day("2011-01-10")})

	for i := 0; i < 5; i++ {
		p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	r := p.Range()
	if r.IsEmpty() {
		t.Fatalf("range inverted: %v", r)
	}
	if !r.Start.Equal(r.End) {
		t.Errorf("start should stop at end, got %v", r)
	}
}

func TestDateRangePicker_EmitsOnChange(t *testing.T) {
	p := NewDateRangePicker(testBounds())

	p, msg := pressMsg(t, p, tea.KeyMsg{Type: tea.KeyRight})
	sel, ok := msg.(RangeSelectedMsg)
	if !ok {
		t.Fatalf("expected RangeSelectedMsg, got %T", msg)
	}
	if sel.Range != p.Range() {
		t.Errorf("message range %v != picker range %v", sel.Range, p.Range())
	}

	// Already at the lower bound: nothing changes, nothing is emitted.
	p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyHome})
	if _, msg = pressMsg(t, p, tea.KeyMsg{Type: tea.KeyLeft}); msg != nil {
		t.Errorf("expected no message, got %T", msg)
	}
}

func TestDateRangePicker_TypedDate(t *testing.T) {
	p := NewDateRangePicker(testBounds())

	p, _ = press(t, p, runes("e"))
	if !p.Editing() {
		t.Fatal("e should start editing")
	}
	if p.input.Value() != "2011-01-01" {
		t.Errorf("input prefilled with %q", p.input.Value())
	}

	p.input.SetValue("")
	for _, r := range "2012-06-15" {
		p, _ = press(t, p, runes(string(r)))
	}
	// Keys that move the range are plain text while editing.
	if p.Range() != testBounds() {
		t.Error("range changed while typing")
	}

	p, msg := pressMsg(t, p, tea.KeyMsg{Type: tea.KeyEnter})
	if p.Editing() {
		t.Error("enter should stop editing")
	}
	if _, ok := msg.(RangeSelectedMsg); !ok {
		t.Fatalf("expected RangeSelectedMsg, got %T", msg)
	}
	if got := p.Range().Start.Format(models.DateLayout); got != "2012-06-15" {
		t.Errorf("Start = %s", got)
	}
}

func TestDateRangePicker_TypedInvertedRange(t *testing.T) {
	p := NewDateRangePicker(testBounds())
	p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyTab})
	p, _ = press(t, p, runes("e"))
	p.input.SetValue("2010-06-01")
	p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyEnter})

	// Out-of-bounds input is clamped, giving an end equal to the first day.
	if got := p.Range().End.Format(models.DateLayout); got != "2011-01-01" {
		t.Errorf("End = %s, want clamped 2011-01-01", got)
	}

	p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyTab})
	p, _ = press(t, p, runes("e"))
	p.input.SetValue("2011-03-01")
	p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyEnter})

	if !p.Range().IsEmpty() {
		t.Errorf("typed start after end should be kept: %v", p.Range())
	}
	if !strings.Contains(p.View(), "start is after end") {
		t.Error("inverted range should be flagged in the view")
	}
}

func TestDateRangePicker_InvalidTypedDate(t *testing.T) {
	p := NewDateRangePicker(testBounds())
	p, _ = press(t, p, runes("e"))
	p.input.SetValue("2011-02-30")

	p, msg := pressMsg(t, p, tea.KeyMsg{Type: tea.KeyEnter})
	errMsg, ok := msg.(DateInputErrorMsg)
	if !ok {
		t.Fatalf("expected DateInputErrorMsg, got %T", msg)
	}
	if errMsg.Input != "2011-02-30" || errMsg.Err == nil {
		t.Errorf("unexpected error message %+v", errMsg)
	}
	if !p.Editing() {
		t.Error("invalid input should keep the editor open")
	}

	p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyEsc})
	if p.Editing() || p.Range() != testBounds() {
		t.Error("esc should cancel without changing the range")
	}
}

func TestDateRangePicker_SetRange(t *testing.T) {
	p := NewDateRangePicker(testBounds())
	p.SetRange(models.DateRange{Start: day("2000-01-01"), End: day("2011-05-05")})

	want := models.DateRange{Start: day("2011-01-01"), End: day("2011-05-05")}
	if p.Range() != want {
		t.Errorf("Range = %v, want %v", p.Range(), want)
	}
}

func TestDateRangePicker_ShortHelp(t *testing.T) {
	p := NewDateRangePicker(testBounds())
	if len(p.ShortHelp()) < 5 {
		t.Error("expected navigation bindings")
	}
	p, _ = press(t, p, runes("e"))
	if len(p.ShortHelp()) != 2 {
		t.Error("editing help should list commit and cancel")
	}
}
