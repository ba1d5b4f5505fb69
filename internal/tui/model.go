// Package tui hosts a pick list in the terminal. Each cell is one unit wide,
// the control sits on the second row and its dropdown rows follow below it.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/agiangrant/picklist"
	"github.com/agiangrant/picklist/control"
	"github.com/agiangrant/picklist/event"
	"github.com/agiangrant/picklist/internal/platform"
)

const (
	controlRow      = 1
	disclosureCells = 3
	defaultWidth    = 40
	minWidth        = 16
	maxWidth        = 60
)

// Model is the Bubble Tea model for the interactive pick list.
type Model struct {
	// UI components
	help   help.Model
	keys   KeyMap
	styles Styles

	// Control
	pickList *control.PickList[string]
	state    *control.State[string]
	overlay  *control.Overlay[string]
	env      control.Env

	// State
	title   string
	options []string
	held    event.Modifiers
	mouse   event.Point
	width   int
	result  string
	done    bool
}

// New builds a model over options. The control is laid out in terminal
// cells whatever the configured sizes, and starts open and focused.
func New(config picklist.Config, options []string, env control.Env) (Model, error) {
	pl, err := picklist.New(config, options)
	if err != nil {
		return Model{}, err
	}
	pl.Padding = event.Padding{Left: 1, Right: 1}
	pl.TextSize = 1
	pl.DisclosureWidth = disclosureCells
	if pl.OptionsEmptyMessage == "" {
		pl.OptionsEmptyMessage = "no matches"
	}

	env.Measurer = platform.CellMeasurer{Width: 1}
	// Terminals deliver ctrl chords on every OS.
	env.Platform = event.DefaultPlatform

	overlay := control.NewOverlay(pl)
	overlay.RowHeight = 1

	m := Model{
		help:     help.New(),
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		pickList: pl,
		state:    control.NewState[string](""),
		overlay:  overlay,
		env:      env,
		title:    "Pick one",
		options:  options,
	}
	if pl.Placeholder != "" {
		m.title = pl.Placeholder
	}
	m.openMenu()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveHover(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveHover(1)
		case key.Matches(msg, m.keys.Pick) && m.hovering():
			m.pickHovered()
		default:
			for _, ev := range m.keyEvents(msg) {
				m.dispatch(ev)
			}
		}

	case tea.MouseMsg:
		if ev, ok := mouseEvent(msg); ok {
			m.dispatch(ev)
		}
	}

	if m.done {
		return m, tea.Quit
	}
	return m, nil
}

// Result returns the picked option or the submitted text.
func (m Model) Result() (string, bool) {
	return m.result, m.done
}

// Text returns the control's text.
func (m Model) Text() string {
	return m.state.Text()
}

// Visible returns the options currently listed in the dropdown.
func (m Model) Visible() []string {
	return m.overlay.Options
}

// bounds lays out the control on its row.
func (m Model) bounds() event.Bounds {
	w := m.width
	if w == 0 {
		w = defaultWidth
	}
	w = max(minWidth, min(w, maxWidth))
	return event.Bounds{X: 0, Y: controlRow, Width: float32(w), Height: 1}
}

// dispatch hands ev to the overlay, which sits above the control, and then
// to the control.
func (m *Model) dispatch(ev event.Event) {
	bounds := m.bounds()
	switch e := ev.(type) {
	case event.PointerMoved:
		m.mouse = e.Position
	case event.PointerPressed:
		m.mouse = e.Position
	}

	m.overlay.Update(m.state.Menu(), ev, bounds)

	_, msgs := m.pickList.Update(m.state, ev, bounds, m.env)
	for _, msg := range msgs {
		switch msg.Kind {
		case control.MessageChanged:
			m.filter(msg.Text)
		case control.MessageSelected:
			option := msg.Option
			m.pickList.Selected = &option
			m.state.SetText(m.pickList.OptionLabel(option))
			m.state.MoveCursorToEnd()
			m.filter("")
			m.result, m.done = option, true
		case control.MessageSubmit:
			m.result, m.done = m.state.Text(), true
		}
	}
}

// filter narrows the dropdown to the options fuzzily matching query.
func (m *Model) filter(query string) {
	options := m.options
	if query != "" {
		matches := fuzzy.Find(query, m.options)
		options = make([]string, len(matches))
		for i, match := range matches {
			options[i] = match.Str
		}
	}
	m.pickList.Options = options
	m.overlay.Options = options
	m.state.Menu().ClearHover()
}

// openMenu presses the disclosure indicator, which opens a closed menu in
// either variant.
func (m *Model) openMenu() {
	d := m.pickList.DisclosureBounds(m.bounds())
	m.dispatch(event.PointerPressed{
		Button:   event.MouseButtonLeft,
		Position: event.Point{X: d.X + d.Width/2, Y: d.Y + d.Height/2},
	})
}

func (m *Model) hovering() bool {
	_, ok := m.state.Menu().Hovered()
	return ok && m.state.IsOpen()
}

// moveHover steps the hovered row, opening the menu first if needed.
func (m *Model) moveHover(delta int) {
	menu := m.state.Menu()
	if !menu.IsOpen() {
		m.openMenu()
		return
	}

	n := len(m.overlay.Options)
	if n == 0 {
		return
	}
	i, ok := menu.Hovered()
	switch {
	case !ok && delta > 0:
		i = 0
	case !ok:
		i = n - 1
	default:
		i = max(0, min(i+delta, n-1))
	}
	menu.Hover(i)
}

// pickHovered presses the hovered row as a pointer would.
func (m *Model) pickHovered() {
	i, _ := m.state.Menu().Hovered()
	rows := m.overlay.Rows(m.state.Menu(), m.bounds())
	if i >= len(rows) || rows[i].Placeholder {
		return
	}
	b := rows[i].Bounds
	m.dispatch(event.PointerPressed{
		Button:   event.MouseButtonLeft,
		Position: event.Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2},
	})
}
