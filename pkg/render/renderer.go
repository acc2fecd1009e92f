// Package render defines the renderer contract and registry shared by all
// output targets. Interactive renderers (terminal session, survey prompts)
// run the form and return the harvested data as JSON; document renderers
// (HTML) return markup.
package render

import (
	"context"

	"github.com/goliatone/go-jsonform/pkg/schema"
)

// Renderer materialises a parsed schema into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, s *schema.Schema, options Options) ([]byte, error)
}
