// Package tui renders a schema as a live terminal form: a bubbletea session
// over the widget tree built by the core, with focus traversal, working
// toggle and multi-toggle composites, and JSON output of the harvested data.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/render"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

// ErrAborted signals the user cancelled the session (esc or Ctrl+C).
var ErrAborted = errors.New("tui: aborted")

// Option configures the terminal renderer.
type Option func(*Renderer)

// WithProgramOptions forwards bubbletea program options, mainly for wiring
// alternate input/output in tests.
func WithProgramOptions(options ...tea.ProgramOption) Option {
	return func(r *Renderer) {
		r.programOptions = append(r.programOptions, options...)
	}
}

// Renderer implements render.Renderer with an interactive bubbletea session.
type Renderer struct {
	programOptions []tea.ProgramOption
}

// New constructs a terminal renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render builds the widget tree, runs the interactive session, and returns
// the harvested values as JSON once the user submits.
func (r *Renderer) Render(ctx context.Context, s *schema.Schema, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}

	f, err := form.New(s, NewToolkit(),
		form.WithStrategy(options.Strategy),
		form.WithValues(options.Values),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: build form: %w", err)
	}
	if len(options.Callbacks) > 0 {
		f.BindCallbacks(options.Callbacks)
	}

	programOptions := append([]tea.ProgramOption{tea.WithContext(ctx)}, r.programOptions...)
	program := tea.NewProgram(newModel(f), programOptions...)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: session: %w", err)
	}
	m, ok := final.(*Model)
	if !ok || m.Aborted() {
		return nil, ErrAborted
	}

	out, err := json.Marshal(f.Data())
	if err != nil {
		return nil, fmt.Errorf("tui: serialize values: %w", err)
	}
	return out, nil
}
