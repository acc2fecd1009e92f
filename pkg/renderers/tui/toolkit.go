package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/goliatone/go-jsonform/pkg/form"
)

// Toolkit implements form.Toolkit with terminal widget state. Controls are
// plain state holders; the tea model routes key events to them and renders
// them with lipgloss.
type Toolkit struct{}

// NewToolkit returns a terminal toolkit.
func NewToolkit() *Toolkit {
	return &Toolkit{}
}

func (t *Toolkit) NewLayout(strategy form.Strategy) form.Layout {
	return &Layout{strategy: strategy}
}

func (t *Toolkit) CreateLineEdit() form.Control {
	input := textinput.New()
	input.Prompt = ""
	input.Width = inputWidth
	return &control{kind: form.KindLineEdit, visible: true, input: &input}
}

func (t *Toolkit) CreateTextArea() form.Control {
	area := textarea.New()
	area.SetWidth(inputWidth)
	area.SetHeight(textAreaHeight)
	return &control{kind: form.KindTextArea, visible: true, area: &area}
}

func (t *Toolkit) CreateCheckbox(text string) form.Control {
	return &control{kind: form.KindCheckbox, text: text, visible: true}
}

func (t *Toolkit) CreateRadio(text string) form.Control {
	return &control{kind: form.KindRadio, text: text, visible: true}
}

func (t *Toolkit) CreateComboBox(options []string) form.Control {
	return &control{kind: form.KindComboBox, options: options, visible: true}
}

func (t *Toolkit) CreateSpinBox(min, max int) form.Control {
	return &control{
		kind:    form.KindSpinBox,
		visible: true,
		integer: true,
		min:     float64(min),
		max:     float64(max),
		step:    1,
		number:  float64(min),
	}
}

func (t *Toolkit) CreateDoubleSpinBox(min, max, step float64) form.Control {
	return &control{
		kind:    form.KindDoubleSpinBox,
		visible: true,
		min:     min,
		max:     max,
		step:    step,
		number:  min,
	}
}

func (t *Toolkit) CreateButton(text string) form.Control {
	return &control{kind: form.KindButton, text: text, visible: true}
}

func (t *Toolkit) CreateLabel(text string) form.Control {
	return &control{kind: form.KindLabel, text: text, visible: true}
}

func (t *Toolkit) CreateGroupBox(title string, layout form.Layout) form.Container {
	return &container{
		control: control{kind: form.KindGroupBox, text: title, visible: true},
		layout:  layout,
	}
}

func (t *Toolkit) CreateContainer(layout form.Layout) form.Container {
	return &container{
		control: control{kind: form.KindContainer, visible: true},
		layout:  layout,
	}
}

func (t *Toolkit) CreateRow(children ...form.Control) form.Container {
	layout := &Layout{strategy: form.StrategyStacked, horizontal: true}
	for _, child := range children {
		layout.Append(child)
	}
	return &container{
		control: control{kind: form.KindRow, visible: true},
		layout:  layout,
	}
}

var _ form.Toolkit = (*Toolkit)(nil)
