package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-jsonform/internal/schema/loader"
	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/render"
	"github.com/goliatone/go-jsonform/pkg/renderers/html"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom schema loader.
func WithLoader(loader schema.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector supplies the resolver used when requests name a theme.
// The go-theme registry satisfies the interface.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themes = selector
	}
}

// WithDefaultTheme sets the theme applied when a request does not name one.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithSchemaTransformer registers a Transformer that can mutate parsed
// schemas before rendering.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator coordinates the full pipeline from schema document to rendered
// output. It applies sensible defaults (the HTML renderer, a file loader)
// while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader          schema.Loader
	registry        *render.Registry
	defaultRenderer string
	themes          theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	transformer     Transformer
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a form from a schema
// document.
type Request struct {
	// Source identifies where the schema document lives. Optional when
	// Document is supplied.
	Source schema.Source

	// Document allows callers to bypass the loader when they already have a
	// loaded payload.
	Document *schema.Document

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName selects a theme by name. When empty the configured default
	// theme applies, if any.
	ThemeName string

	// ThemeVariant selects a variant within the theme.
	ThemeVariant string

	// Strategy picks the layout strategy renderers should apply.
	Strategy form.Strategy

	// Values prefill matching fields before rendering.
	Values map[string]any

	// Callbacks are handed to interactive renderers for button wiring.
	Callbacks map[string]func()
}

// Generate executes the loader → parser → renderer sequence and returns the
// rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	s, err := doc.Parse()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse schema: %w", err)
	}

	if err := o.applyTransformer(ctx, s); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	selection, err := o.resolveTheme(req)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, s, render.Options{
		Strategy:  req.Strategy,
		Values:    req.Values,
		Callbacks: req.Callbacks,
		Theme:     selection,
	})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (schema.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return schema.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return schema.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.Selection, error) {
	name := req.ThemeName
	variant := req.ThemeVariant
	if name == "" {
		name = o.defaultTheme
		if variant == "" {
			variant = o.defaultVariant
		}
	}
	if name == "" {
		return nil, nil
	}
	if o.themes == nil {
		return nil, fmt.Errorf("orchestrator: theme %q requested but no selector configured", name)
	}
	selection, err := o.themes.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	return selection, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, s *schema.Schema) error {
	if o.transformer == nil || s == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, s); err != nil {
		return fmt.Errorf("orchestrator: transform schema: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(schema.NewLoaderOptions())
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
