// Package html renders a schema as a static HTML document. Controls carry the
// same defaults and placement rules as the live builders; toggle fields map
// to native details/summary disclosure and multi_toggle fields emit one
// template element per children_map key for a host page to instantiate.
package html

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/render"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

const (
	defaultPageTemplate = "page.html"
	defaultTitle        = "Form"
)

// Numeric bounds applied when the descriptor leaves them out, mirrored from
// the widget factory.
const (
	defaultMinimum = 0.0
	defaultMaximum = 100.0
	defaultStep    = 0.1
)

// Option configures the HTML renderer.
type Option func(*config)

type config struct {
	templates fs.FS
	page      string
	title     string
}

// WithTemplatesFS overrides the embedded page templates.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithPageTemplate selects the shell template by file name.
func WithPageTemplate(name string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(name) != "" {
			cfg.page = name
		}
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(title) != "" {
			cfg.title = title
		}
	}
}

// Renderer implements render.Renderer for static HTML output.
type Renderer struct {
	templates *pongo2.TemplateSet
	page      string
	title     string
}

// New constructs an HTML renderer backed by the embedded page shell.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{page: defaultPageTemplate, title: defaultTitle}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	files := cfg.templates
	if files == nil {
		sub, err := fs.Sub(templatesFS, "templates")
		if err != nil {
			return nil, fmt.Errorf("html: embedded templates: %w", err)
		}
		files = sub
	}

	return &Renderer{
		templates: pongo2.NewSet("jsonform", pongo2.NewFSLoader(files)),
		page:      cfg.page,
		title:     cfg.title,
	}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the output MIME type.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full document for the schema.
func (r *Renderer) Render(ctx context.Context, s *schema.Schema, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.New("html: schema is required")
	}

	strategy := options.Strategy
	if strategy == "" {
		strategy = form.StrategyStacked
	}

	var body strings.Builder
	r.renderFields(&body, s.Fields(), strategy, options.Values)

	tmpl, err := r.templates.FromFile(r.page)
	if err != nil {
		return nil, fmt.Errorf("html: load page template: %w", err)
	}

	themeName := ""
	if options.Theme != nil {
		themeName = options.Theme.Theme
	}

	out, err := tmpl.ExecuteBytes(pongo2.Context{
		"title":      r.title,
		"strategy":   string(strategy),
		"theme_name": themeName,
		"css_vars":   cssVars(options),
		"body":       body.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("html: execute page template: %w", err)
	}
	return out, nil
}

// cssVars flattens the selected theme's tokens into custom properties.
func cssVars(options render.Options) string {
	if options.Theme == nil || options.Theme.Manifest == nil || len(options.Theme.Manifest.Tokens) == 0 {
		return ""
	}
	tokens := options.Theme.Manifest.Tokens
	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "--%s: %s; ", key, tokens[key])
	}
	return strings.TrimSpace(b.String())
}

func (r *Renderer) renderFields(b *strings.Builder, fields *schema.Fields, strategy form.Strategy, values map[string]any) {
	fields.Each(func(name string, field *schema.Field) bool {
		r.renderField(b, name, field, strategy, values)
		return true
	})
}

func (r *Renderer) renderField(b *strings.Builder, name string, field *schema.Field, strategy form.Strategy, values map[string]any) {
	if field == nil {
		return
	}
	title := field.DisplayTitle()

	switch field.Widget {
	case "group":
		var inner strings.Builder
		r.renderFields(&inner, field.Properties, strategy, values)
		markup := "<fieldset class=\"jf-group\"><legend>" + html.EscapeString(title) + "</legend>" + inner.String() + "</fieldset>"
		place(b, strategy, title, markup)

	case "label":
		place(b, strategy, "", "<p class=\"jf-label\">"+textPolicy().Sanitize(field.Text)+"</p>")

	case "button":
		text := field.Text
		if text == "" {
			text = "Submit"
		}
		attrs := ""
		if field.Callback != "" {
			attrs = ` data-callback="` + html.EscapeString(field.Callback) + `"`
		}
		place(b, strategy, "", `<button type="button" name="`+html.EscapeString(name)+`"`+attrs+`>`+html.EscapeString(text)+`</button>`)

	case "radio":
		var inner strings.Builder
		inner.WriteString(`<fieldset class="jf-radio"><legend>` + html.EscapeString(title) + `</legend>`)
		selected, _ := values[name].(string)
		for _, value := range field.Enum {
			checked := ""
			if value == selected {
				checked = " checked"
			}
			inner.WriteString(`<label><input type="radio" name="` + html.EscapeString(name) + `" value="` + html.EscapeString(value) + `"` + checked + `> ` + html.EscapeString(value) + `</label>`)
		}
		inner.WriteString(`</fieldset>`)
		place(b, strategy, title, inner.String())

	case "toggle":
		var inner strings.Builder
		r.renderFields(&inner, field.Children, form.StrategyStacked, values)
		place(b, strategy, "", `<details class="jf-toggle"><summary>`+html.EscapeString(title)+`</summary>`+inner.String()+`</details>`)

	case "multi_toggle":
		place(b, strategy, "", r.multiToggleMarkup(name, field, values))

	default:
		markup, ok := r.controlMarkup(name, field, values)
		if !ok {
			return
		}
		place(b, strategy, title, markup)
	}
}

// controlMarkup produces the input element for a leaf, honouring the widget
// tag first and the type tag as fallback. Unrecognised combinations yield no
// markup.
func (r *Renderer) controlMarkup(name string, field *schema.Field, values map[string]any) (string, bool) {
	escName := html.EscapeString(name)

	switch field.Widget {
	case "textarea":
		return `<textarea name="` + escName + `">` + html.EscapeString(stringValue(values, name)) + `</textarea>`, true
	case "checkbox":
		text := field.Text
		if text == "" {
			text = field.DisplayTitle()
		}
		return checkboxMarkup(escName, text, values[name]), true
	case "spinbox":
		return numberMarkup(escName, field, true, values[name]), true
	case "doublespinbox":
		return numberMarkup(escName, field, false, values[name]), true
	case "combobox":
		return selectMarkup(escName, field.Enum, stringValue(values, name)), true
	case "lineedit":
		return textMarkup(escName, stringValue(values, name)), true
	}

	switch field.Type {
	case "string":
		if len(field.Enum) > 0 {
			return selectMarkup(escName, field.Enum, stringValue(values, name)), true
		}
		return textMarkup(escName, stringValue(values, name)), true
	case "integer":
		return numberMarkup(escName, field, true, values[name]), true
	case "number":
		return numberMarkup(escName, field, false, values[name]), true
	case "boolean":
		return checkboxMarkup(escName, field.DisplayTitle(), values[name]), true
	}

	return "", false
}

// multiToggleMarkup emits the selector plus add button and one inert template
// per children_map key. Instantiating templates is left to the host page.
func (r *Renderer) multiToggleMarkup(name string, field *schema.Field, values map[string]any) string {
	escName := html.EscapeString(name)

	var b strings.Builder
	b.WriteString(`<div class="jf-multi" data-field="` + escName + `">`)
	b.WriteString(selectMarkup(escName+"_selector", field.Enum, ""))
	b.WriteString(`<button type="button" data-action="add">[+]</button>`)
	b.WriteString(`<div class="jf-multi-items"></div>`)

	keys := make([]string, 0, len(field.ChildrenMap))
	for key := range field.ChildrenMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		var inner strings.Builder
		r.renderFields(&inner, field.ChildrenMap[key], form.StrategyStacked, values)
		b.WriteString(`<template data-key="` + html.EscapeString(key) + `">` + inner.String() + `</template>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}

// place wraps one field's markup per the layout strategy, mirroring the
// placement rules of the live builder.
func place(b *strings.Builder, strategy form.Strategy, title, markup string) {
	switch strategy {
	case form.StrategyGrid:
		b.WriteString(`<div class="jf-row"><span class="jf-cell jf-cell-label">` + html.EscapeString(title) + `</span><span class="jf-cell">` + markup + `</span></div>`)
	case form.StrategyPaired:
		b.WriteString(`<div class="jf-pair">`)
		if title != "" {
			b.WriteString(`<label class="jf-title">` + html.EscapeString(title) + `</label>`)
		}
		b.WriteString(markup + `</div>`)
	default:
		b.WriteString(`<div class="jf-field">` + markup + `</div>`)
	}
}

func textMarkup(escName, value string) string {
	attr := ""
	if value != "" {
		attr = ` value="` + html.EscapeString(value) + `"`
	}
	return `<input type="text" name="` + escName + `"` + attr + `>`
}

func checkboxMarkup(escName, text string, value any) string {
	checked := ""
	if on, _ := value.(bool); on {
		checked = " checked"
	}
	return `<label class="jf-check"><input type="checkbox" name="` + escName + `"` + checked + `> ` + html.EscapeString(text) + `</label>`
}

func selectMarkup(escName string, options []string, selected string) string {
	var b strings.Builder
	b.WriteString(`<select name="` + escName + `">`)
	for _, option := range options {
		attr := ""
		if option == selected {
			attr = ` selected`
		}
		b.WriteString(`<option value="` + html.EscapeString(option) + `"` + attr + `>` + html.EscapeString(option) + `</option>`)
	}
	b.WriteString(`</select>`)
	return b.String()
}

func numberMarkup(escName string, field *schema.Field, integer bool, prefill any) string {
	min, max, step := defaultMinimum, defaultMaximum, defaultStep
	if field.Minimum != nil {
		min = *field.Minimum
	}
	if field.Maximum != nil {
		max = *field.Maximum
	}
	if field.Step != nil {
		step = *field.Step
	}

	value := min
	switch n := prefill.(type) {
	case int:
		value = float64(n)
	case float64:
		value = n
	}

	stepAttr := formatNumber(step, false)
	if integer {
		stepAttr = "1"
	}
	return `<input type="number" name="` + escName +
		`" min="` + formatNumber(min, integer) +
		`" max="` + formatNumber(max, integer) +
		`" step="` + stepAttr +
		`" value="` + formatNumber(value, integer) + `">`
}

func formatNumber(v float64, integer bool) string {
	if integer {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringValue(values map[string]any, name string) string {
	if values == nil {
		return ""
	}
	s, _ := values[name].(string)
	return s
}
