package form

import (
	"github.com/goliatone/go-jsonform/pkg/schema"
	"github.com/goliatone/go-jsonform/pkg/widgets"
)

// defaultWidgets carries the built-in tag resolution shared by all forms
// that do not supply their own registry.
var defaultWidgets = widgets.NewRegistry()

// builder owns the single build pass over a schema tree. It shares the field
// and button registries with the factory helpers by reference; leaf creation
// registers as its primary side effect.
type builder struct {
	toolkit  Toolkit
	strategy Strategy
	widgets  *widgets.Registry
	fields   *Registry
	buttons  *Buttons
}

func newBuilder(toolkit Toolkit, strategy Strategy) *builder {
	return &builder{
		toolkit:  toolkit,
		strategy: strategy,
		widgets:  defaultWidgets,
		fields:   &Registry{},
		buttons:  &Buttons{},
	}
}

// buildInto walks the field map in declaration order and places every
// produced control into layout. The row counter only matters for grid
// placement; the other strategies ignore it.
func (b *builder) buildInto(layout Layout, fields *schema.Fields) {
	row := 0
	fields.Each(func(name string, field *schema.Field) bool {
		b.buildField(layout, &row, name, field)
		return true
	})
}

func (b *builder) buildField(layout Layout, row *int, name string, field *schema.Field) {
	if field == nil {
		return
	}
	title := field.DisplayTitle()

	switch {
	case field.Widget == "group":
		groupLayout := b.toolkit.NewLayout(b.strategy)
		b.buildInto(groupLayout, field.Properties)
		box := b.toolkit.CreateGroupBox(title, groupLayout)
		b.place(layout, title, row, box)

	case field.Widget == "label":
		b.place(layout, "", row, b.toolkit.CreateLabel(field.Text))

	case field.Widget == "button":
		text := field.Text
		if text == "" {
			text = defaultButtonText
		}
		button := b.toolkit.CreateButton(text)
		b.buttons.add(name, button, field.Callback)
		b.place(layout, "", row, button)

	case field.Widget == "radio":
		b.buildRadioGroup(layout, row, name, title, field)

	default:
		entry, ok := b.createLeaf(name, field)
		if !ok {
			return
		}
		switch entry.Kind {
		case EntryToggle:
			b.place(layout, "", row, entry.Toggle.Trigger)
			b.place(layout, "", row, entry.Toggle.Container)
			if field.Children.Len() > 0 {
				b.buildInto(entry.Toggle.Container.Layout(), field.Children)
			}
		case EntryMultiToggle:
			b.place(layout, "", row, entry.Multi.Row)
			b.place(layout, "", row, entry.Multi.Container)
		default:
			b.place(layout, title, row, entry.Control)
		}
	}
}

// buildRadioGroup wraps one exclusive control per enum value in a titled box
// placed as a single unit. The wrap always stacks vertically regardless of
// the form strategy.
func (b *builder) buildRadioGroup(layout Layout, row *int, name, title string, field *schema.Field) {
	members := make([]Control, 0, len(field.Enum))
	wrapLayout := b.toolkit.NewLayout(StrategyStacked)
	for _, value := range field.Enum {
		member := b.toolkit.CreateRadio(value)
		members = append(members, member)
		wrapLayout.Append(member)
	}
	b.fields.add(name, Entry{Kind: EntryGroup, Group: members})

	box := b.toolkit.CreateGroupBox(title, wrapLayout)
	b.place(layout, title, row, box)
}

// place routes one field's control(s) into the layout per its strategy.
// Composites and group boxes arrive as a single control and are therefore
// never split across row or column boundaries.
func (b *builder) place(layout Layout, title string, row *int, ctrls ...Control) {
	if len(ctrls) == 0 {
		return
	}
	switch layout.Strategy() {
	case StrategyGrid:
		layout.AppendCell(*row, 0, b.toolkit.CreateLabel(title))
		for col, ctrl := range ctrls {
			layout.AppendCell(*row, col+1, ctrl)
		}
		*row++
	case StrategyPaired:
		if len(ctrls) == 1 {
			layout.AppendPair(title, ctrls[0])
			return
		}
		layout.AppendPair(title, b.toolkit.CreateRow(ctrls...))
	default:
		for _, ctrl := range ctrls {
			layout.Append(ctrl)
		}
	}
}
