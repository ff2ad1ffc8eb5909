// Package dashboard provides the main dashboard tab: the date range picker, the
// headline metrics and the hour and season charts for the selected range.
package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/app"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/components"
)

// keyMap defines the scrolling keys of the dashboard. Arrows and paging keys are
// taken by the picker.
type keyMap struct {
	ScrollDown   key.Binding
	ScrollUp     key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	PageDown     key.Binding
	PageUp       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ScrollDown:   key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "scroll down")),
		ScrollUp:     key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "scroll up")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		PageDown:     key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "page down")),
		PageUp:       key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "page up")),
	}
}

func (k keyMap) scrolls(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.ScrollDown, k.ScrollUp, k.HalfPageDown, k.HalfPageUp, k.PageDown, k.PageUp)
}

// Model represents the dashboard tab state.
type Model struct {
	state    *app.State
	picker   components.DateRangePicker
	spinner  components.LoadingSpinner
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new dashboard model with the picker spanning the data bounds.
func New(state *app.State) *Model {
	keys := defaultKeyMap()

	vp := viewport.New(0, 0)
	vp.KeyMap.Down = keys.ScrollDown
	vp.KeyMap.Up = keys.ScrollUp
	vp.KeyMap.HalfPageDown = keys.HalfPageDown
	vp.KeyMap.HalfPageUp = keys.HalfPageUp
	vp.KeyMap.PageDown = keys.PageDown
	vp.KeyMap.PageUp = keys.PageUp

	return &Model{
		state:    state,
		picker:   components.NewDateRangePicker(state.Bounds()),
		spinner:  components.NewSpinner("Computing report..."),
		keys:     keys,
		viewport: vp,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case components.RangeSelectedMsg:
		cmds = append(cmds, app.ChangeRange(msg.Range))

	case components.DateInputErrorMsg:
		cmds = append(cmds, app.NotifyError(
			fmt.Sprintf("Invalid date %q, expected %s", msg.Input, models.DateLayout)))

	case app.ReportUpdatedMsg:
		if msg.Report.Range != m.picker.Range() {
			m.picker.SetRange(msg.Report.Range)
		}

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))

	case spinner.TickMsg:
		if !m.state.HasReport() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		if m.picker.Editing() {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	if !m.picker.Editing() && m.keys.scrolls(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	m.picker, cmd = m.picker.Update(msg)
	return cmd
}

// CapturingInput reports whether a typed date is being entered.
func (m *Model) CapturingInput() bool {
	return m.picker.Editing()
}

// Range returns the range currently shown by the picker.
func (m *Model) Range() models.DateRange {
	return m.picker.Range()
}

// SetSize sets the available size for the dashboard.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	// DocStyle adds a margin of 1x2 and horizontal padding of 1.
	m.viewport.Width = max(width-6, 0)
	m.viewport.Height = max(height-2, 0)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	bindings := m.picker.ShortHelp()
	if m.picker.Editing() {
		return bindings
	}
	return append(bindings, m.keys.ScrollDown, m.keys.ScrollUp)
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	pk := m.picker.KeyMap()
	return [][]key.Binding{
		{pk.SwitchField, pk.PrevDay, pk.NextDay, pk.PrevWeek, pk.NextWeek},
		{pk.PrevMonth, pk.NextMonth, pk.First, pk.Last},
		{pk.Edit, pk.Commit, pk.Cancel, pk.Reset},
		{m.keys.ScrollDown, m.keys.ScrollUp, m.keys.HalfPageDown, m.keys.HalfPageUp, m.keys.PageDown, m.keys.PageUp},
	}
}
