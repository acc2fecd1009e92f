// Package prompt renders a schema as a sequence of terminal prompts and
// returns the answers as the harvested payload. Groups and toggle trees
// flatten into one question flow; multi_toggle fields become an add-another
// loop over their children_map templates.
package prompt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-jsonform/pkg/render"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

// Default numeric bounds, mirrored from the widget factory.
const (
	defaultMinimum = 0.0
	defaultMaximum = 100.0
)

// Renderer implements render.Renderer for terminal-driven prompt sessions.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
}

// New constructs a prompt renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}
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
	return "prompt"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Render walks the schema in declaration order, asks one prompt per leaf, and
// serializes the collected answers. Unrecognised fields are skipped silently.
func (r *Renderer) Render(ctx context.Context, s *schema.Schema, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("prompt: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.New("prompt: schema is required")
	}

	values := make(map[string]any)
	if err := r.promptFields(ctx, s.Fields(), options.Values, values); err != nil {
		return nil, err
	}
	return r.serialize(values)
}

func (r *Renderer) promptFields(ctx context.Context, fields *schema.Fields, prefill, values map[string]any) error {
	var walkErr error
	fields.Each(func(name string, field *schema.Field) bool {
		if err := r.promptField(ctx, name, field, prefill, values); err != nil {
			walkErr = err
			return false
		}
		return true
	})
	return walkErr
}

func (r *Renderer) promptField(ctx context.Context, name string, field *schema.Field, prefill, values map[string]any) error {
	if field == nil {
		return nil
	}
	title := field.DisplayTitle()

	switch field.Widget {
	case "group":
		if err := r.driver.Info(ctx, "== "+title+" =="); err != nil {
			return err
		}
		return r.promptFields(ctx, field.Properties, prefill, values)
	case "label":
		return r.driver.Info(ctx, field.Text)
	case "button":
		// Buttons have no prompt equivalent.
		return nil
	case "radio", "combobox":
		return r.promptChoice(ctx, name, field, prefill, values)
	case "checkbox":
		return r.promptBoolean(ctx, name, field, prefill, values)
	case "spinbox":
		return r.promptNumber(ctx, name, field, true, prefill, values)
	case "doublespinbox":
		return r.promptNumber(ctx, name, field, false, prefill, values)
	case "textarea":
		return r.promptTextArea(ctx, name, field, prefill, values)
	case "lineedit":
		return r.promptString(ctx, name, field, prefill, values)
	case "toggle":
		return r.promptToggle(ctx, field, prefill, values)
	case "multi_toggle":
		return r.promptMultiToggle(ctx, name, field, values)
	}

	switch field.Type {
	case "string":
		if len(field.Enum) > 0 {
			return r.promptChoice(ctx, name, field, prefill, values)
		}
		return r.promptString(ctx, name, field, prefill, values)
	case "integer":
		return r.promptNumber(ctx, name, field, true, prefill, values)
	case "number":
		return r.promptNumber(ctx, name, field, false, prefill, values)
	case "boolean":
		return r.promptBoolean(ctx, name, field, prefill, values)
	}

	return nil
}

func (r *Renderer) promptString(ctx context.Context, name string, field *schema.Field, prefill, values map[string]any) error {
	response, err := r.driver.Input(ctx, InputConfig{
		Message: field.DisplayTitle(),
		Default: stringDefault(prefill, name),
	})
	if err != nil {
		return err
	}
	values[name] = response
	return nil
}

func (r *Renderer) promptTextArea(ctx context.Context, name string, field *schema.Field, prefill, values map[string]any) error {
	response, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: field.DisplayTitle(),
		Default: stringDefault(prefill, name),
	})
	if err != nil {
		return err
	}
	values[name] = response
	return nil
}

func (r *Renderer) promptBoolean(ctx context.Context, name string, field *schema.Field, prefill, values map[string]any) error {
	def, _ := prefill[name].(bool)
	response, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: field.DisplayTitle(),
		Default: def,
	})
	if err != nil {
		return err
	}
	values[name] = response
	return nil
}

func (r *Renderer) promptChoice(ctx context.Context, name string, field *schema.Field, prefill, values map[string]any) error {
	defaultIndex := 0
	if def, ok := prefill[name].(string); ok {
		if idx := indexOf(field.Enum, def); idx >= 0 {
			defaultIndex = idx
		}
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      field.DisplayTitle(),
		Options:      field.Enum,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(field.Enum) {
		return nil
	}
	values[name] = field.Enum[idx]
	return nil
}

// promptNumber re-asks until the response parses and sits inside the field's
// bounds.
func (r *Renderer) promptNumber(ctx context.Context, name string, field *schema.Field, integer bool, prefill, values map[string]any) error {
	min, max := defaultMinimum, defaultMaximum
	if field.Minimum != nil {
		min = *field.Minimum
	}
	if field.Maximum != nil {
		max = *field.Maximum
	}

	def := stringDefault(prefill, name)
	if def == "" {
		if integer {
			def = strconv.Itoa(int(min))
		} else {
			def = strconv.FormatFloat(min, 'f', -1, 64)
		}
	}

	for {
		input, err := r.driver.Input(ctx, InputConfig{
			Message: field.DisplayTitle(),
			Default: def,
		})
		if err != nil {
			return err
		}

		parsed, parseErr := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if parseErr != nil {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", name, parseErr)); err != nil {
				return err
			}
			continue
		}
		if parsed < min || parsed > max {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: must be between %v and %v", name, min, max)); err != nil {
				return err
			}
			continue
		}

		if integer {
			values[name] = int(parsed)
		} else {
			values[name] = parsed
		}
		return nil
	}
}

// promptToggle asks whether to expand; on yes the children flatten into the
// same answer set, matching the flat registry of the widget builder.
func (r *Renderer) promptToggle(ctx context.Context, field *schema.Field, prefill, values map[string]any) error {
	if field.Children.Len() == 0 {
		return nil
	}
	expand, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: "Expand " + field.DisplayTitle() + "?",
	})
	if err != nil {
		return err
	}
	if !expand {
		return nil
	}
	return r.promptFields(ctx, field.Children, prefill, values)
}

// promptMultiToggle runs an add-another loop; each accepted add selects a
// template key and fills one independent instance. The key is present in the
// output only when at least one instance was added.
func (r *Renderer) promptMultiToggle(ctx context.Context, name string, field *schema.Field, values map[string]any) error {
	var instances []map[string]any
	title := field.DisplayTitle()

	for {
		add, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: "Add " + title + " entry?",
		})
		if err != nil {
			return err
		}
		if !add {
			break
		}

		idx, err := r.driver.Select(ctx, SelectConfig{
			Message: title,
			Options: field.Enum,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Enum) {
			continue
		}
		children := field.ChildrenMap[field.Enum[idx]]
		if children.Len() == 0 {
			continue
		}

		instance := make(map[string]any)
		if err := r.promptFields(ctx, children, nil, instance); err != nil {
			return err
		}
		instances = append(instances, instance)
	}

	if len(instances) > 0 {
		values[name] = instances
	}
	return nil
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var b strings.Builder
		for _, key := range keys {
			fmt.Fprintf(&b, "%s: %v\n", key, values[key])
		}
		return []byte(b.String()), nil
	}

	out, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("prompt: serialize values: %w", err)
	}
	return out, nil
}
