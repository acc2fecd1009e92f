package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/goliatone/go-jsonform/pkg/form"
)

const (
	inputWidth     = 36
	textAreaHeight = 4
)

// control is the terminal realisation of a form.Control. One struct covers
// every kind; only the members for its kind are populated.
type control struct {
	kind    form.Kind
	text    string
	visible bool

	input *textinput.Model // line edit
	area  *textarea.Model  // text area

	checked bool // checkbox, radio

	options  []string // combo box
	selected int      // combo box cursor

	number   float64 // spin boxes
	min, max float64
	step     float64
	integer  bool

	handlers []func()
	focused  bool
}

func (c *control) Kind() form.Kind { return c.kind }

func (c *control) Text() string {
	switch c.kind {
	case form.KindLineEdit:
		return c.input.Value()
	case form.KindTextArea:
		return c.area.Value()
	case form.KindComboBox:
		return c.selectedOption()
	}
	return c.text
}

func (c *control) SetText(text string) {
	switch c.kind {
	case form.KindLineEdit:
		c.input.SetValue(text)
	case form.KindTextArea:
		c.area.SetValue(text)
	case form.KindComboBox:
		c.selectOption(text)
	default:
		c.text = text
	}
}

func (c *control) Value() any {
	switch c.kind {
	case form.KindLineEdit:
		return c.input.Value()
	case form.KindTextArea:
		return c.area.Value()
	case form.KindCheckbox, form.KindRadio:
		return c.checked
	case form.KindComboBox:
		return c.selectedOption()
	case form.KindSpinBox:
		return int(c.number)
	case form.KindDoubleSpinBox:
		return c.number
	}
	return nil
}

func (c *control) SetValue(value any) {
	switch c.kind {
	case form.KindLineEdit:
		if text, ok := value.(string); ok {
			c.input.SetValue(text)
		}
	case form.KindTextArea:
		if text, ok := value.(string); ok {
			c.area.SetValue(text)
		}
	case form.KindCheckbox, form.KindRadio:
		if checked, ok := value.(bool); ok {
			c.checked = checked
		}
	case form.KindComboBox:
		if text, ok := value.(string); ok {
			c.selectOption(text)
		}
	case form.KindSpinBox, form.KindDoubleSpinBox:
		if number, ok := toFloat(value); ok {
			c.number = clamp(number, c.min, c.max)
		}
	}
}

func (c *control) Visible() bool        { return c.visible }
func (c *control) SetVisible(v bool)    { c.visible = v }
func (c *control) OnActivate(fn func()) { c.handlers = append(c.handlers, fn) }

func (c *control) activate() {
	for _, fn := range c.handlers {
		fn()
	}
}

func (c *control) selectedOption() string {
	if c.selected >= 0 && c.selected < len(c.options) {
		return c.options[c.selected]
	}
	return ""
}

func (c *control) selectOption(text string) {
	for i, option := range c.options {
		if option == text {
			c.selected = i
			return
		}
	}
}

// focusable reports whether the control takes keyboard focus.
func (c *control) focusable() bool {
	switch c.kind {
	case form.KindLineEdit, form.KindTextArea, form.KindCheckbox, form.KindRadio,
		form.KindComboBox, form.KindSpinBox, form.KindDoubleSpinBox, form.KindButton:
		return true
	}
	return false
}

func (c *control) setFocus(focused bool) {
	c.focused = focused
	switch c.kind {
	case form.KindLineEdit:
		if focused {
			c.input.Focus()
		} else {
			c.input.Blur()
		}
	case form.KindTextArea:
		if focused {
			c.area.Focus()
		} else {
			c.area.Blur()
		}
	}
}

// spin adjusts a numeric control by direction*step, clamped to its bounds.
func (c *control) spin(direction float64) {
	c.number = clamp(c.number+direction*c.step, c.min, c.max)
	if c.integer {
		c.number = float64(int(c.number))
	}
}

// cycle moves a combo cursor by delta, wrapping around the option list.
func (c *control) cycle(delta int) {
	if len(c.options) == 0 {
		return
	}
	c.selected = (c.selected + delta + len(c.options)) % len(c.options)
}

func (c *control) numberText() string {
	if c.integer {
		return strconv.Itoa(int(c.number))
	}
	return strconv.FormatFloat(c.number, 'f', -1, 64)
}

// container is a control owning a nested layout.
type container struct {
	control
	layout form.Layout
}

func (c *container) Layout() form.Layout { return c.layout }

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	return 0, false
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
