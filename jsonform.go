// Package jsonform builds interactive forms from JSON or YAML schema
// documents. The root package re-exports the most common entry points so
// callers can load, build, and render forms without importing the
// sub-packages directly.
package jsonform

import (
	"context"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-jsonform/internal/schema/loader"
	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/orchestrator"
	"github.com/goliatone/go-jsonform/pkg/render"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

// Strategy selects how a form lays out its controls.
type Strategy = form.Strategy

// Layout strategies accepted by builders and renderers.
const (
	StrategyStacked = form.StrategyStacked
	StrategyGrid    = form.StrategyGrid
	StrategyPaired  = form.StrategyPaired
)

// Options carries per-request rendering instructions.
type Options = render.Options

// Request describes the inputs for a single orchestrated render.
type Request = orchestrator.Request

// NewLoader constructs a schema loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...schema.LoaderOption) schema.Loader {
	cfg := schema.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// Parse decodes a raw JSON or YAML payload into a schema.
func Parse(raw []byte) (*schema.Schema, error) {
	return schema.Parse(raw)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want the full load → parse → render pipeline.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the schema source and renders it using the named renderer.
// It is the simplest entry point for callers that just want output bytes.
func Generate(ctx context.Context, source schema.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateFromDocument renders a form using a pre-loaded document, bypassing
// the loader stage while still delegating to the orchestrator.
func GenerateFromDocument(ctx context.Context, doc schema.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}
