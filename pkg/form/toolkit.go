package form

// Strategy selects the placement policy the builder uses when arranging
// controls in a layout.
type Strategy string

const (
	// StrategyStacked appends controls top to bottom; leaf titles are not
	// rendered, only group-box titles surface.
	StrategyStacked Strategy = "stacked"
	// StrategyGrid places a synthetic title label in column 0 and the
	// control(s) in column 1 onward, one row per placement.
	StrategyGrid Strategy = "grid"
	// StrategyPaired produces title/value rows; multiple controls for one
	// field share a horizontal sub-container in the value slot.
	StrategyPaired Strategy = "paired"
)

// Kind identifies a control primitive. Harvesting dispatches on Kind instead
// of inspecting concrete toolkit types.
type Kind string

const (
	KindLineEdit      Kind = "line_edit"
	KindTextArea      Kind = "text_area"
	KindCheckbox      Kind = "checkbox"
	KindRadio         Kind = "radio"
	KindComboBox      Kind = "combo_box"
	KindSpinBox       Kind = "spin_box"
	KindDoubleSpinBox Kind = "double_spin_box"
	KindButton        Kind = "button"
	KindLabel         Kind = "label"
	KindGroupBox      Kind = "group_box"
	KindContainer     Kind = "container"
	KindRow           Kind = "row"
)

// Control is one interactive or display primitive produced by a Toolkit. The
// builder and harvester only ever touch controls through this surface.
//
// Value semantics by kind: line edit, text area, and combo box yield string;
// spin box yields int; double spin box yields float64; checkbox and radio
// yield bool (checked state). Buttons, labels, and containers have no value.
type Control interface {
	Kind() Kind

	Text() string
	SetText(text string)

	Value() any
	SetValue(value any)

	Visible() bool
	SetVisible(visible bool)

	// OnActivate wires fn to the control's activation event (button press,
	// toggle trigger). Non-activatable controls ignore it.
	OnActivate(fn func())
}

// Container is a control that owns a nested layout other controls are built
// into (group box, toggle body, multi-toggle row).
type Container interface {
	Control
	Layout() Layout
}

// Layout is the placement surface for one level of the widget tree. Which of
// the Append variants the builder calls depends on the layout's Strategy.
type Layout interface {
	Strategy() Strategy

	// Append places a control at the end of a stacked layout.
	Append(ctrl Control)
	// AppendCell places a control at a grid coordinate.
	AppendCell(row, col int, ctrl Control)
	// AppendPair places one title/value row in a paired layout.
	AppendPair(title string, ctrl Control)
	// Remove detaches a previously placed control.
	Remove(ctrl Control)
}

// Toolkit is the opaque UI capability set the builder targets. Renderers
// supply an implementation; the core never reaches past this surface.
type Toolkit interface {
	NewLayout(strategy Strategy) Layout

	CreateLineEdit() Control
	CreateTextArea() Control
	CreateCheckbox(text string) Control
	CreateRadio(text string) Control
	CreateComboBox(options []string) Control
	CreateSpinBox(min, max int) Control
	CreateDoubleSpinBox(min, max, step float64) Control
	CreateButton(text string) Control
	CreateLabel(text string) Control

	CreateGroupBox(title string, layout Layout) Container
	CreateContainer(layout Layout) Container
	// CreateRow wraps controls into one horizontal unit, used for paired-row
	// value slots and removable multi-toggle instances.
	CreateRow(children ...Control) Container
}
