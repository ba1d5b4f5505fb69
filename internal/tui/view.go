package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/picklist/control"
)

// Styles holds the lipgloss styles used to draw the model.
type Styles struct {
	Title       lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Caret       lipgloss.Style
	Selection   lipgloss.Style
	Disclosure  lipgloss.Style
	Row         lipgloss.Style
	RowHovered  lipgloss.Style
	Empty       lipgloss.Style
}

// DefaultStyles returns the default dark styles.
func DefaultStyles() Styles {
	accent := lipgloss.Color("#7aa2f7")
	muted := lipgloss.Color("#565f89")
	text := lipgloss.Color("#c0caf5")

	return Styles{
		Title:       lipgloss.NewStyle().Foreground(accent).Bold(true),
		Text:        lipgloss.NewStyle().Foreground(text),
		Placeholder: lipgloss.NewStyle().Foreground(muted),
		Caret:       lipgloss.NewStyle().Reverse(true),
		Selection:   lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("#1a1b26")),
		Disclosure:  lipgloss.NewStyle().Foreground(accent),
		Row:         lipgloss.NewStyle().Foreground(text),
		RowHovered:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Empty:       lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}

// View implements tea.Model.
func (m Model) View() string {
	bounds := m.bounds()
	v := m.pickList.Visuals(m.state, bounds, m.mouse, m.env)

	lines := []string{
		m.styles.Title.Render(m.title),
		m.renderControl(v),
	}
	if v.Open {
		for _, row := range m.overlay.Rows(m.state.Menu(), bounds) {
			lines = append(lines, m.renderRow(row, int(bounds.Width)))
		}
	}
	lines = append(lines, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderControl(v control.Visuals) string {
	p := m.pickList.Padding
	visible := int(v.TextBounds.Width) - disclosureCells

	glyph := "▾"
	if v.Open {
		glyph = "▴"
	}

	return strings.Repeat(" ", int(p.Left)) +
		m.renderText(v, visible) +
		m.styles.Disclosure.Render(lipgloss.PlaceHorizontal(disclosureCells, lipgloss.Center, glyph)) +
		strings.Repeat(" ", int(p.Right))
}

// renderText draws the text scrolled by the offset into visible cells.
func (m Model) renderText(v control.Visuals, visible int) string {
	offset := cells(v.Offset)
	caret := cells(v.Caret)
	selStart, selEnd := cells(v.SelectionStart), cells(v.SelectionEnd)
	showCaret := v.Focused && !v.Selection

	var b strings.Builder
	col, used := 0, 0
	for _, r := range v.Text {
		start := col
		col += runewidth.RuneWidth(r)
		if start < offset {
			continue
		}
		if col-offset > visible {
			break
		}
		used = col - offset

		s := string(r)
		switch {
		case v.Selection && start >= selStart && start < selEnd:
			s = m.styles.Selection.Render(s)
		case showCaret && start == caret:
			s = m.styles.Caret.Render(s)
		case v.Placeholder:
			s = m.styles.Placeholder.Render(s)
		default:
			s = m.styles.Text.Render(s)
		}
		b.WriteString(s)
	}

	if showCaret && !v.Placeholder && caret == col && caret-offset < visible {
		b.WriteString(m.styles.Caret.Render(" "))
		used++
	}
	if used < visible {
		b.WriteString(strings.Repeat(" ", visible-used))
	}
	return b.String()
}

func (m Model) renderRow(row control.Row[string], width int) string {
	if row.Placeholder {
		return m.styles.Empty.Render(runewidth.FillRight("  "+row.Label, width))
	}
	label := runewidth.Truncate(row.Label, width-2, "…")
	if row.Hovered {
		return m.styles.RowHovered.Render(runewidth.FillRight("› "+label, width))
	}
	return m.styles.Row.Render(runewidth.FillRight("  "+label, width))
}

func cells(x float32) int {
	return int(math.Round(float64(x)))
}
