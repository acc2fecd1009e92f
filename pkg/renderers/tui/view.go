package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-jsonform/pkg/form"
)

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	groupStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			PaddingLeft(1).
			PaddingRight(1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m *Model) View() string {
	if m.root == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.viewLayout(m.root))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next · enter/space: activate · ←/→: adjust · ctrl+s: submit · esc: cancel"))
	return b.String()
}

func (m *Model) viewLayout(l *Layout) string {
	if l.horizontal {
		var parts []string
		for _, c := range l.cells {
			if !c.ctrl.Visible() {
				continue
			}
			parts = append(parts, m.viewControl(c.ctrl))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, interleave(parts, " ")...)
	}

	switch l.strategy {
	case form.StrategyGrid:
		return m.viewGrid(l)
	case form.StrategyPaired:
		return m.viewPaired(l)
	default:
		var lines []string
		for _, c := range l.cells {
			if !c.ctrl.Visible() {
				continue
			}
			if view := m.viewControl(c.ctrl); view != "" {
				lines = append(lines, view)
			}
		}
		return strings.Join(lines, "\n")
	}
}

// viewGrid joins each recorded row horizontally, rows top to bottom. The
// synthetic title labels placed in column 0 land first in every row.
func (m *Model) viewGrid(l *Layout) string {
	rows := make(map[int][]cell)
	var order []int
	for _, c := range l.cells {
		if !c.ctrl.Visible() {
			continue
		}
		if _, seen := rows[c.row]; !seen {
			order = append(order, c.row)
		}
		rows[c.row] = append(rows[c.row], c)
	}
	sort.Ints(order)

	var lines []string
	for _, rowIdx := range order {
		cells := rows[rowIdx]
		sort.SliceStable(cells, func(i, j int) bool { return cells[i].col < cells[j].col })
		var parts []string
		for _, c := range cells {
			parts = append(parts, m.viewControl(c.ctrl))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, interleave(parts, "  ")...))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewPaired(l *Layout) string {
	var lines []string
	for _, c := range l.cells {
		if !c.ctrl.Visible() {
			continue
		}
		view := m.viewControl(c.ctrl)
		if c.title != "" {
			view = lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(c.title+": "), view)
		}
		lines = append(lines, view)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewControl(ctrl form.Control) string {
	if boxed, ok := ctrl.(*container); ok {
		return m.viewContainer(boxed)
	}
	c, ok := ctrl.(*control)
	if !ok {
		return ""
	}

	switch c.kind {
	case form.KindLabel:
		return labelStyle.Render(c.text)
	case form.KindLineEdit:
		return c.input.View()
	case form.KindTextArea:
		return c.area.View()
	case form.KindButton:
		return m.decorate(c, "[ "+c.text+" ]")
	case form.KindCheckbox:
		mark := "[ ]"
		if c.checked {
			mark = "[x]"
		}
		return m.decorate(c, mark+" "+c.text)
	case form.KindRadio:
		mark := "( )"
		if c.checked {
			mark = "(•)"
		}
		return m.decorate(c, mark+" "+c.text)
	case form.KindComboBox:
		return m.decorate(c, "‹ "+c.selectedOption()+" ›")
	case form.KindSpinBox, form.KindDoubleSpinBox:
		return m.decorate(c, "‹ "+c.numberText()+" ›")
	}
	return ""
}

func (m *Model) viewContainer(c *container) string {
	inner, ok := c.layout.(*Layout)
	if !ok {
		return ""
	}
	content := m.viewLayout(inner)

	switch c.kind {
	case form.KindGroupBox:
		return groupStyle.Render(titleStyle.Render(c.text) + "\n" + content)
	default:
		return content
	}
}

func (m *Model) decorate(c *control, view string) string {
	if c == m.focused {
		return focusedStyle.Render("> " + view)
	}
	return "  " + view
}

func interleave(parts []string, sep string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, part := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, part)
	}
	return out
}
