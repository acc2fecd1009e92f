// Package form holds the schema-to-widget-tree builder and its data binding:
// recursive construction against an opaque Toolkit, layout-strategy
// placement, composite toggle/multi_toggle wiring, value harvesting, and
// button callback binding.
//
// A Form and its registries are single-owner state: build, user-event
// callbacks, and harvesting all run on the caller's event-loop goroutine.
package form

import (
	"errors"

	"github.com/goliatone/go-jsonform/pkg/schema"
	"github.com/goliatone/go-jsonform/pkg/widgets"
)

// Option configures a Form during construction.
type Option func(*Form)

// WithStrategy selects the layout strategy for the root and for nested
// groups. Defaults to StrategyStacked.
func WithStrategy(strategy Strategy) Option {
	return func(f *Form) {
		if strategy != "" {
			f.strategy = strategy
		}
	}
}

// WithValues prefills controls by field name after the build pass. Values for
// unknown names or composite entries are ignored.
func WithValues(values map[string]any) Option {
	return func(f *Form) {
		f.values = values
	}
}

// WithWidgets replaces the widget tag registry consulted during the build.
func WithWidgets(registry *widgets.Registry) Option {
	return func(f *Form) {
		if registry != nil {
			f.widgets = registry
		}
	}
}

// Form is a live widget tree built from a schema, plus the registries needed
// to harvest values and bind callbacks.
type Form struct {
	toolkit  Toolkit
	strategy Strategy
	widgets  *widgets.Registry
	values   map[string]any

	root    Layout
	fields  *Registry
	buttons *Buttons
}

// New builds the widget tree for s against the supplied toolkit. Schema
// authoring errors degrade silently: unrecognised fields produce no controls
// and no layout entries.
func New(s *schema.Schema, toolkit Toolkit, options ...Option) (*Form, error) {
	if s == nil {
		return nil, errors.New("form: schema is required")
	}
	if toolkit == nil {
		return nil, errors.New("form: toolkit is required")
	}

	f := &Form{toolkit: toolkit, strategy: StrategyStacked}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}

	b := newBuilder(toolkit, f.strategy)
	if f.widgets != nil {
		b.widgets = f.widgets
	}
	root := toolkit.NewLayout(f.strategy)
	b.buildInto(root, s.Fields())

	f.root = root
	f.fields = b.fields
	f.buttons = b.buttons
	f.applyValues()
	return f, nil
}

// Layout returns the root layout of the built tree.
func (f *Form) Layout() Layout {
	return f.root
}

// Fields returns the leaf-control registry.
func (f *Form) Fields() *Registry {
	return f.fields
}

// Buttons returns the button registry.
func (f *Form) Buttons() *Buttons {
	return f.buttons
}

// Data harvests current control values into a flat mapping keyed by field
// name. Keys with no harvestable value (unchecked radio groups, empty
// multi-toggle containers) are omitted.
func (f *Form) Data() map[string]any {
	return harvest(f.fields)
}

// BindCallbacks wires caller-supplied actions to button activation by the
// callback name each button field declared. Missing declarations and missing
// table entries are silent no-ops.
func (f *Form) BindCallbacks(callbacks map[string]func()) {
	for _, name := range f.buttons.Names() {
		entry := f.buttons.byName[name]
		if entry.callback == "" {
			continue
		}
		fn, ok := callbacks[entry.callback]
		if !ok || fn == nil {
			continue
		}
		entry.control.OnActivate(fn)
	}
}

func (f *Form) applyValues() {
	if len(f.values) == 0 {
		return
	}
	for name, value := range f.values {
		entry, ok := f.fields.Get(name)
		if !ok {
			continue
		}
		switch entry.Kind {
		case EntrySingle:
			entry.Control.SetValue(value)
		case EntryGroup:
			text, ok := value.(string)
			if !ok {
				continue
			}
			for _, member := range entry.Group {
				if member.Text() == text {
					member.SetValue(true)
					break
				}
			}
		}
	}
}
