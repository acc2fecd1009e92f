package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-jsonform/pkg/form"
)

// Model is the bubbletea model driving one form session. Key events route to
// the focused control; activation handlers wired by the builder (toggle
// flips, multi-toggle add/remove, bound callbacks) run synchronously inside
// Update.
type Model struct {
	f    *form.Form
	root *Layout

	focused *control

	done    bool
	aborted bool
}

func newModel(f *form.Form) *Model {
	m := &Model{f: f}
	if root, ok := f.Layout().(*Layout); ok {
		m.root = root
	}
	m.focusFirst()
	return m
}

// Form exposes the live form, mainly for harvesting after the session ends.
func (m *Model) Form() *form.Form { return m.f }

// Done reports whether the session ended with a submit.
func (m *Model) Done() bool { return m.done }

// Aborted reports whether the session was cancelled.
func (m *Model) Aborted() bool { return m.aborted }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit

	case "ctrl+s":
		m.done = true
		return m, tea.Quit

	case "tab":
		m.moveFocus(1)
		return m, nil

	case "shift+tab":
		m.moveFocus(-1)
		return m, nil
	}

	if m.focused == nil {
		return m, nil
	}

	switch m.focused.kind {
	case form.KindLineEdit:
		updated, cmd := m.focused.input.Update(msg)
		*m.focused.input = updated
		return m, cmd

	case form.KindTextArea:
		updated, cmd := m.focused.area.Update(msg)
		*m.focused.area = updated
		return m, cmd
	}

	switch keyMsg.String() {
	case "enter", " ":
		m.activateFocused()
	case "left":
		m.adjustFocused(-1)
	case "right":
		m.adjustFocused(1)
	}
	return m, nil
}

// activateFocused runs the activation behaviour of the focused control. The
// focus ring is recomputed afterwards because activation can hide, show, add,
// or remove controls.
func (m *Model) activateFocused() {
	c := m.focused
	switch c.kind {
	case form.KindButton:
		c.activate()
	case form.KindCheckbox:
		c.checked = !c.checked
	case form.KindRadio:
		m.selectRadio(c)
	case form.KindComboBox:
		c.cycle(1)
	}
	m.ensureFocus()
}

func (m *Model) adjustFocused(direction int) {
	c := m.focused
	switch c.kind {
	case form.KindComboBox:
		c.cycle(direction)
	case form.KindSpinBox, form.KindDoubleSpinBox:
		c.spin(float64(direction))
	}
}

// selectRadio checks the target and unchecks its siblings in the same wrap
// layout, keeping the group exclusive.
func (m *Model) selectRadio(target *control) {
	if m.root == nil {
		target.checked = true
		return
	}
	m.root.visit(func(ctrl form.Control, parent *Layout) bool {
		if ctrl != target {
			return true
		}
		for _, c := range parent.cells {
			if sibling, ok := c.ctrl.(*control); ok && sibling.kind == form.KindRadio {
				sibling.checked = sibling == target
			}
		}
		return false
	})
}

// focusRing collects the focusable, visible controls in placement order.
func (m *Model) focusRing() []*control {
	if m.root == nil {
		return nil
	}
	var ring []*control
	m.root.visit(func(ctrl form.Control, _ *Layout) bool {
		if c, ok := ctrl.(*control); ok && c.focusable() {
			ring = append(ring, c)
		}
		return true
	})
	return ring
}

func (m *Model) focusFirst() {
	ring := m.focusRing()
	if len(ring) == 0 {
		return
	}
	m.setFocus(ring[0])
}

func (m *Model) moveFocus(delta int) {
	ring := m.focusRing()
	if len(ring) == 0 {
		m.setFocus(nil)
		return
	}
	current := -1
	for i, c := range ring {
		if c == m.focused {
			current = i
			break
		}
	}
	next := (current + delta + len(ring)) % len(ring)
	if current == -1 {
		next = 0
	}
	m.setFocus(ring[next])
}

// ensureFocus re-validates the focused control after the tree changed.
func (m *Model) ensureFocus() {
	ring := m.focusRing()
	for _, c := range ring {
		if c == m.focused {
			return
		}
	}
	if len(ring) == 0 {
		m.setFocus(nil)
		return
	}
	m.setFocus(ring[0])
}

func (m *Model) setFocus(c *control) {
	if m.focused != nil && m.focused != c {
		m.focused.setFocus(false)
	}
	m.focused = c
	if c != nil {
		c.setFocus(true)
	}
}
