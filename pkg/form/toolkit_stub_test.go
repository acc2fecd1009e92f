package form

// In-memory toolkit used across the package tests. Controls record their
// construction parameters and activation handlers; layouts record placements
// in call order.

type stubControl struct {
	kind    Kind
	text    string
	value   any
	visible bool

	min, max float64
	step     float64
	options  []string

	handlers []func()
}

func (c *stubControl) Kind() Kind           { return c.kind }
func (c *stubControl) Text() string         { return c.text }
func (c *stubControl) SetText(text string)  { c.text = text }
func (c *stubControl) Value() any           { return c.value }
func (c *stubControl) SetValue(value any)   { c.value = value }
func (c *stubControl) Visible() bool        { return c.visible }
func (c *stubControl) SetVisible(v bool)    { c.visible = v }
func (c *stubControl) OnActivate(fn func()) { c.handlers = append(c.handlers, fn) }

func (c *stubControl) activate() {
	for _, fn := range c.handlers {
		fn()
	}
}

type stubContainer struct {
	stubControl
	layout   Layout
	children []Control
}

func (c *stubContainer) Layout() Layout { return c.layout }

type placement struct {
	ctrl     Control
	title    string
	row, col int
}

type stubLayout struct {
	strategy   Strategy
	placements []placement
}

func (l *stubLayout) Strategy() Strategy { return l.strategy }

func (l *stubLayout) Append(ctrl Control) {
	l.placements = append(l.placements, placement{ctrl: ctrl})
}

func (l *stubLayout) AppendCell(row, col int, ctrl Control) {
	l.placements = append(l.placements, placement{ctrl: ctrl, row: row, col: col})
}

func (l *stubLayout) AppendPair(title string, ctrl Control) {
	l.placements = append(l.placements, placement{ctrl: ctrl, title: title})
}

func (l *stubLayout) Remove(ctrl Control) {
	kept := l.placements[:0]
	for _, p := range l.placements {
		if p.ctrl != ctrl {
			kept = append(kept, p)
		}
	}
	l.placements = kept
}

type stubToolkit struct{}

func (stubToolkit) NewLayout(strategy Strategy) Layout {
	return &stubLayout{strategy: strategy}
}

func (stubToolkit) CreateLineEdit() Control {
	return &stubControl{kind: KindLineEdit, value: "", visible: true}
}

func (stubToolkit) CreateTextArea() Control {
	return &stubControl{kind: KindTextArea, value: "", visible: true}
}

func (stubToolkit) CreateCheckbox(text string) Control {
	return &stubControl{kind: KindCheckbox, text: text, value: false, visible: true}
}

func (stubToolkit) CreateRadio(text string) Control {
	return &stubControl{kind: KindRadio, text: text, value: false, visible: true}
}

func (stubToolkit) CreateComboBox(options []string) Control {
	selected := ""
	if len(options) > 0 {
		selected = options[0]
	}
	return &stubControl{kind: KindComboBox, options: options, value: selected, visible: true}
}

func (stubToolkit) CreateSpinBox(min, max int) Control {
	return &stubControl{kind: KindSpinBox, min: float64(min), max: float64(max), value: min, visible: true}
}

func (stubToolkit) CreateDoubleSpinBox(min, max, step float64) Control {
	return &stubControl{kind: KindDoubleSpinBox, min: min, max: max, step: step, value: min, visible: true}
}

func (stubToolkit) CreateButton(text string) Control {
	return &stubControl{kind: KindButton, text: text, visible: true}
}

func (stubToolkit) CreateLabel(text string) Control {
	return &stubControl{kind: KindLabel, text: text, visible: true}
}

func (stubToolkit) CreateGroupBox(title string, layout Layout) Container {
	return &stubContainer{
		stubControl: stubControl{kind: KindGroupBox, text: title, visible: true},
		layout:      layout,
	}
}

func (stubToolkit) CreateContainer(layout Layout) Container {
	return &stubContainer{
		stubControl: stubControl{kind: KindContainer, visible: true},
		layout:      layout,
	}
}

func (stubToolkit) CreateRow(children ...Control) Container {
	layout := &stubLayout{strategy: StrategyStacked}
	for _, child := range children {
		layout.Append(child)
	}
	return &stubContainer{
		stubControl: stubControl{kind: KindRow, visible: true},
		layout:      layout,
		children:    children,
	}
}
