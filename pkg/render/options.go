package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-jsonform/pkg/form"
)

// Options carry per-request data renderers can use without mutating the
// schema pipeline.
type Options struct {
	// Strategy selects the layout placement policy. Renderers fall back to
	// stacked when unset.
	Strategy form.Strategy
	// Values prefills controls by field name before the form is shown.
	Values map[string]any
	// Callbacks maps schema-declared callback names to actions, consumed by
	// button binding in interactive renderers.
	Callbacks map[string]func()
	// Theme is the resolved token set document renderers translate into
	// styling. Interactive renderers may ignore it.
	Theme *theme.Selection
}
