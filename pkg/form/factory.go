package form

import (
	"github.com/goliatone/go-jsonform/pkg/schema"
	"github.com/goliatone/go-jsonform/pkg/widgets"
)

// Trigger glyphs shared by toggle and multi_toggle composites.
const (
	glyphClosed = "[+]"
	glyphOpen   = "[-]"
)

const defaultButtonText = "Submit"

// Numeric bounds applied when the descriptor leaves them out.
const (
	defaultMinimum = 0
	defaultMaximum = 100
	defaultStep    = 0.1
)

// createLeaf produces the control entry for a leaf descriptor and registers
// it. The widget registry honours the explicit widget tag first, then falls
// back to the type tag. A field no rule claims, or a tag the factory does
// not know, yields no entry; the caller skips the field silently.
func (b *builder) createLeaf(name string, field *schema.Field) (Entry, bool) {
	tag, ok := b.widgets.Resolve(field)
	if !ok {
		return Entry{}, false
	}

	switch tag {
	case widgets.WidgetTextArea:
		return b.register(name, b.toolkit.CreateTextArea()), true
	case widgets.WidgetCheckbox:
		// The text key only applies to explicitly tagged checkboxes; the
		// boolean type fallback labels with the title.
		text := field.Text
		if field.Widget != widgets.WidgetCheckbox || text == "" {
			text = field.DisplayTitle()
		}
		return b.register(name, b.toolkit.CreateCheckbox(text)), true
	case widgets.WidgetSpinBox:
		return b.createSpinBox(name, field), true
	case widgets.WidgetDoubleSpinBox:
		return b.createDoubleSpinBox(name, field), true
	case widgets.WidgetToggle:
		return b.createToggle(name), true
	case widgets.WidgetComboBox:
		return b.register(name, b.toolkit.CreateComboBox(field.Enum)), true
	case widgets.WidgetLineEdit:
		return b.register(name, b.toolkit.CreateLineEdit()), true
	case widgets.WidgetMultiToggle:
		return b.createMultiToggle(name, field), true
	}

	return Entry{}, false
}

func (b *builder) register(name string, ctrl Control) Entry {
	entry := Entry{Kind: EntrySingle, Control: ctrl}
	b.fields.add(name, entry)
	return entry
}

func (b *builder) createSpinBox(name string, field *schema.Field) Entry {
	min, max := defaultMinimum, defaultMaximum
	if field.Minimum != nil {
		min = int(*field.Minimum)
	}
	if field.Maximum != nil {
		max = int(*field.Maximum)
	}
	return b.register(name, b.toolkit.CreateSpinBox(min, max))
}

func (b *builder) createDoubleSpinBox(name string, field *schema.Field) Entry {
	min, max, step := float64(defaultMinimum), float64(defaultMaximum), defaultStep
	if field.Minimum != nil {
		min = *field.Minimum
	}
	if field.Maximum != nil {
		max = *field.Maximum
	}
	if field.Step != nil {
		step = *field.Step
	}
	return b.register(name, b.toolkit.CreateDoubleSpinBox(min, max, step))
}

// createToggle wires a trigger button to flip the visibility of an initially
// hidden container, swapping the trigger glyph with every activation.
func (b *builder) createToggle(name string) Entry {
	trigger := b.toolkit.CreateButton(glyphClosed)
	container := b.toolkit.CreateContainer(b.toolkit.NewLayout(StrategyStacked))
	container.SetVisible(false)

	trigger.OnActivate(func() {
		open := !container.Visible()
		container.SetVisible(open)
		if open {
			trigger.SetText(glyphOpen)
		} else {
			trigger.SetText(glyphClosed)
		}
	})

	entry := Entry{Kind: EntryToggle, Toggle: &Toggle{Trigger: trigger, Container: container}}
	b.fields.add(name, entry)
	return entry
}

// createMultiToggle wires a selector and add trigger to an initially empty
// container; every add instantiates an independent removable subform for the
// selector's current key.
func (b *builder) createMultiToggle(name string, field *schema.Field) Entry {
	selector := b.toolkit.CreateComboBox(field.Enum)
	addButton := b.toolkit.CreateButton(glyphClosed)
	row := b.toolkit.CreateRow(selector, addButton)
	container := b.toolkit.CreateContainer(b.toolkit.NewLayout(StrategyStacked))

	multi := &MultiToggle{
		Selector:  selector,
		AddButton: addButton,
		Row:       row,
		Container: container,
	}
	addButton.OnActivate(func() {
		b.addInstance(multi, field)
	})

	entry := Entry{Kind: EntryMultiToggle, Multi: multi}
	b.fields.add(name, entry)
	return entry
}

// addInstance appends one subform instance for the selector's current key.
// A key with no children_map entry is a no-op.
func (b *builder) addInstance(multi *MultiToggle, field *schema.Field) {
	key, _ := multi.Selector.Value().(string)
	children := field.ChildrenMap[key]
	if children.Len() == 0 {
		return
	}

	sub := newBuilder(b.toolkit, StrategyStacked)
	sub.widgets = b.widgets
	fieldsBox := b.toolkit.CreateContainer(b.toolkit.NewLayout(StrategyStacked))
	sub.buildInto(fieldsBox.Layout(), children)

	removeButton := b.toolkit.CreateButton(glyphOpen)
	row := b.toolkit.CreateRow(fieldsBox, removeButton)

	inst := &Instance{Key: key, fields: sub.fields, row: row}
	removeButton.OnActivate(func() {
		multi.Container.Layout().Remove(row)
		multi.remove(inst)
	})

	multi.Container.Layout().Append(row)
	multi.instances = append(multi.instances, inst)
}

func (m *MultiToggle) remove(inst *Instance) {
	for i, candidate := range m.instances {
		if candidate == inst {
			m.instances = append(m.instances[:i], m.instances[i+1:]...)
			return
		}
	}
}
