package orchestrator

import (
	"context"

	"github.com/goliatone/go-jsonform/pkg/schema"
)

// Transformer mutates a parsed schema before it is handed to the renderer.
// Implementations can inject fields, rewrite titles, or strip entries the
// caller should not see.
type Transformer interface {
	Transform(ctx context.Context, s *schema.Schema) error
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(ctx context.Context, s *schema.Schema) error

// Transform implements Transformer.
func (f TransformerFunc) Transform(ctx context.Context, s *schema.Schema) error {
	if f == nil {
		return nil
	}
	return f(ctx, s)
}
