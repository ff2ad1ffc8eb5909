package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/styles"
)

// PickerField identifies one end of the date range picker.
type PickerField int

const (
	// FieldStart is the first day of the range.
	FieldStart PickerField = iota
	// FieldEnd is the last day of the range.
	FieldEnd
)

// String returns the field caption.
func (f PickerField) String() string {
	if f == FieldEnd {
		return "To"
	}
	return "From"
}

// RangeSelectedMsg is emitted by the picker whenever its range changes.
type RangeSelectedMsg struct {
	Range models.DateRange
}

// DateInputErrorMsg is emitted when a typed date cannot be parsed.
type DateInputErrorMsg struct {
	Input string
	Err   error
}

// PickerKeyMap defines the key bindings of the date range picker.
type PickerKeyMap struct {
	SwitchField key.Binding
	PrevDay     key.Binding
	NextDay     key.Binding
	PrevWeek    key.Binding
	NextWeek    key.Binding
	PrevMonth   key.Binding
	NextMonth   key.Binding
	First       key.Binding
	Last        key.Binding
	Edit        key.Binding
	Commit      key.Binding
	Cancel      key.Binding
	Reset       key.Binding
}

// DefaultPickerKeyMap returns the default picker bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		SwitchField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "from/to")),
		PrevDay:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "-1 day")),
		NextDay:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "+1 day")),
		PrevWeek:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "-7 days")),
		NextWeek:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "+7 days")),
		PrevMonth:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "-30 days")),
		NextMonth:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "+30 days")),
		First:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first day")),
		Last:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last day")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "type date")),
		Commit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Reset:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "full span")),
	}
}

// DateRangePicker selects an inclusive date range inside fixed bounds.
type DateRangePicker struct {
	bounds  models.DateRange
	rng     models.DateRange
	focus   PickerField
	editing bool
	input   textinput.Model
	keys    PickerKeyMap
}

// NewDateRangePicker creates a picker over bounds, selecting the full span.
func NewDateRangePicker(bounds models.DateRange) DateRangePicker {
	ti := textinput.New()
	ti.Placeholder = models.DateLayout
	ti.CharLimit = len(models.DateLayout)
	ti.Width = len(models.DateLayout) + 1
	ti.Prompt = ""

	return DateRangePicker{
		bounds: bounds,
		rng:    bounds,
		focus:  FieldStart,
		input:  ti,
		keys:   DefaultPickerKeyMap(),
	}
}

// Range returns the selected range.
func (p DateRangePicker) Range() models.DateRange {
	return p.rng
}

// Bounds returns the span the picker is restricted to.
func (p DateRangePicker) Bounds() models.DateRange {
	return p.bounds
}

// Focused returns the field that movement keys act on.
func (p DateRangePicker) Focused() PickerField {
	return p.focus
}

// Editing returns true while a typed date is being entered.
func (p DateRangePicker) Editing() bool {
	return p.editing
}

// KeyMap returns the picker bindings.
func (p DateRangePicker) KeyMap() PickerKeyMap {
	return p.keys
}

// SetRange replaces the selection, clamping both ends to the bounds.
func (p *DateRangePicker) SetRange(r models.DateRange) {
	p.rng = r.Clamp(p.bounds)
}

// Update handles key presses. It returns a command emitting RangeSelectedMsg when
// the range changed, or DateInputErrorMsg when a typed date was rejected.
func (p DateRangePicker) Update(msg tea.Msg) (DateRangePicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.editing {
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, cmd
		}
		return p, nil
	}

	if p.editing {
		return p.updateEditing(keyMsg)
	}

	before := p.rng
	switch {
	case key.Matches(keyMsg, p.keys.SwitchField):
		if p.focus == FieldStart {
			p.focus = FieldEnd
		} else {
			p.focus = FieldStart
		}
	case key.Matches(keyMsg, p.keys.PrevDay):
		p.shift(-1)
	case key.Matches(keyMsg, p.keys.NextDay):
		p.shift(1)
	case key.Matches(keyMsg, p.keys.PrevWeek):
		p.shift(-7)
	case key.Matches(keyMsg, p.keys.NextWeek):
		p.shift(7)
	case key.Matches(keyMsg, p.keys.PrevMonth):
		p.shift(-30)
	case key.Matches(keyMsg, p.keys.NextMonth):
		p.shift(30)
	case key.Matches(keyMsg, p.keys.First):
		p.move(p.bounds.Start)
	case key.Matches(keyMsg, p.keys.Last):
		p.move(p.bounds.End)
	case key.Matches(keyMsg, p.keys.Reset):
		p.rng = p.bounds
	case key.Matches(keyMsg, p.keys.Edit):
		p.editing = true
		p.input.SetValue(p.focusedDate().Format(models.DateLayout))
		p.input.CursorEnd()
		return p, p.input.Focus()
	}

	return p, p.changed(before)
}

func (p DateRangePicker) updateEditing(msg tea.KeyMsg) (DateRangePicker, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Cancel):
		p.stopEditing()
		return p, nil

	case key.Matches(msg, p.keys.Commit):
		raw := strings.TrimSpace(p.input.Value())
		d, err := models.ParseDate(raw)
		if err != nil {
			return p, func() tea.Msg {
				return DateInputErrorMsg{Input: raw, Err: fmt.Errorf("expected %s: %w", models.DateLayout, err)}
			}
		}
		p.stopEditing()

		// Typed dates may invert the range; the result is simply empty.
		before := p.rng
		if p.focus == FieldStart {
			p.rng.Start = models.ClampDate(d, p.bounds)
		} else {
			p.rng.End = models.ClampDate(d, p.bounds)
		}
		return p, p.changed(before)
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *DateRangePicker) stopEditing() {
	p.editing = false
	p.input.Blur()
	p.input.Reset()
}

func (p DateRangePicker) focusedDate() time.Time {
	if p.focus == FieldEnd {
		return p.rng.End
	}
	return p.rng.Start
}

func (p *DateRangePicker) shift(days int) {
	p.move(p.focusedDate().AddDate(0, 0, days))
}

// move places the focused end at d, keeping it inside the bounds and on its own
// side of the other end.
func (p *DateRangePicker) move(d time.Time) {
	if p.focus == FieldStart {
		p.rng.Start = models.ClampDate(d, models.DateRange{Start: p.bounds.Start, End: p.rng.End})
	} else {
		p.rng.End = models.ClampDate(d, models.DateRange{Start: p.rng.Start, End: p.bounds.End})
	}
}

func (p DateRangePicker) changed(before models.DateRange) tea.Cmd {
	if p.rng == before {
		return nil
	}
	r := p.rng
	return func() tea.Msg { return RangeSelectedMsg{Range: r} }
}

// View renders both fields side by side with the span length.
func (p DateRangePicker) View() string {
	field := func(f PickerField, d time.Time) string {
		content := d.Format(models.DateLayout)
		style := styles.BlurredBorderStyle
		if f == p.focus {
			style = styles.FocusedBorderStyle
			if p.editing {
				content = p.input.View()
			}
		}
		caption := styles.MetricLabelStyle.Render(f.String())
		return lipgloss.JoinVertical(lipgloss.Left, caption, style.Render(content))
	}

	var summary string
	if p.rng.IsEmpty() {
		summary = styles.WarningTextStyle.Render("start is after end")
	} else {
		summary = styles.HelpStyle.Render(fmt.Sprintf("%d days", p.rng.Days()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		field(FieldStart, p.rng.Start),
		"  ",
		field(FieldEnd, p.rng.End),
		"  ",
		summary,
	)
}

// ShortHelp returns the bindings shown in the help overlay.
func (p DateRangePicker) ShortHelp() []key.Binding {
	if p.editing {
		return []key.Binding{p.keys.Commit, p.keys.Cancel}
	}
	return []key.Binding{
		p.keys.SwitchField, p.keys.PrevDay, p.keys.NextDay, p.keys.PrevWeek, p.keys.NextWeek,
		p.keys.PrevMonth, p.keys.NextMonth, p.keys.Edit, p.keys.Reset,
	}
}
