// Package widgets resolves schema fields to canonical widget tags. The
// built-in matchers encode the type fallbacks (enum strings become combo
// boxes, integers become spin boxes) while callers can register their own
// matchers to claim fields for custom widgets.
package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-jsonform/pkg/schema"
)

// Canonical widget tags understood by the form builders.
const (
	WidgetLineEdit      = "lineedit"
	WidgetTextArea      = "textarea"
	WidgetCheckbox      = "checkbox"
	WidgetSpinBox       = "spinbox"
	WidgetDoubleSpinBox = "doublespinbox"
	WidgetComboBox      = "combobox"
	WidgetRadio         = "radio"
	WidgetToggle        = "toggle"
	WidgetMultiToggle   = "multi_toggle"
	WidgetGroup         = "group"
	WidgetLabel         = "label"
	WidgetButton        = "button"
)

// Matcher decides whether a widget tag should handle the supplied field.
type Matcher func(field *schema.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widget tags for fields based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in type-fallback matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence over lower ones.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget tag for a field. An explicit widget hint on the
// field is honoured before matcher evaluation when it names a tag someone can
// handle; an unrecognised hint falls through to the matchers so the type tag
// still gets a say. Fields nothing claims resolve to false and are skipped by
// the builders.
func (r *Registry) Resolve(field *schema.Field) (string, bool) {
	if field == nil {
		return "", false
	}
	if explicit := strings.TrimSpace(field.Widget); explicit != "" && r.handles(explicit) {
		return explicit, true
	}
	if r == nil {
		return "", false
	}

	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// handles reports whether a tag names a canonical widget or a registered
// matcher.
func (r *Registry) handles(tag string) bool {
	switch tag {
	case WidgetLineEdit, WidgetTextArea, WidgetCheckbox, WidgetSpinBox,
		WidgetDoubleSpinBox, WidgetComboBox, WidgetRadio, WidgetToggle,
		WidgetMultiToggle, WidgetGroup, WidgetLabel, WidgetButton:
		return true
	}
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.rules {
		if entry.name == tag {
			return true
		}
	}
	return false
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetComboBox, 20, func(field *schema.Field) bool {
		return field.Type == "string" && len(field.Enum) > 0
	})
	r.Register(WidgetLineEdit, 10, func(field *schema.Field) bool {
		return field.Type == "string"
	})
	r.Register(WidgetSpinBox, 10, func(field *schema.Field) bool {
		return field.Type == "integer"
	})
	r.Register(WidgetDoubleSpinBox, 10, func(field *schema.Field) bool {
		return field.Type == "number"
	})
	r.Register(WidgetCheckbox, 10, func(field *schema.Field) bool {
		return field.Type == "boolean"
	})
}
