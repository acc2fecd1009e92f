package html

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/render"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

func mustSchema(t *testing.T, doc string) *schema.Schema {
	t.Helper()
	s, err := schema.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return s
}

func renderDoc(t *testing.T, doc string, options render.Options) string {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(context.Background(), mustSchema(t, doc), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderIdentity(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if r.Name() != "html" {
		t.Errorf("name = %q, want html", r.Name())
	}
	if !strings.HasPrefix(r.ContentType(), "text/html") {
		t.Errorf("content type = %q", r.ContentType())
	}
}

func TestRenderRequiresSchema(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := r.Render(context.Background(), nil, render.Options{}); err == nil {
		t.Fatal("expected error for nil schema")
	}
}

func TestRenderBasicControls(t *testing.T) {
	doc := `{"properties": {
		"name": {"widget": "lineedit", "title": "Name"},
		"bio": {"widget": "textarea"},
		"active": {"widget": "checkbox", "text": "Is active"},
		"color": {"type": "string", "enum": ["red", "green"]}
	}}`
	out := renderDoc(t, doc, render.Options{})

	for _, want := range []string{
		`<input type="text" name="name">`,
		`<textarea name="bio"></textarea>`,
		`<input type="checkbox" name="active"> Is active`,
		`<select name="color">`,
		`<option value="red">red</option>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRenderNumericDefaults(t *testing.T) {
	doc := `{"properties": {
		"age": {"type": "integer"},
		"score": {"widget": "doublespinbox", "minimum": 1.5, "maximum": 9.5, "step": 0.5}
	}}`
	out := renderDoc(t, doc, render.Options{})

	if !strings.Contains(out, `name="age" min="0" max="100" step="1" value="0"`) {
		t.Errorf("integer bounds not defaulted:\n%s", out)
	}
	if !strings.Contains(out, `name="score" min="1.5" max="9.5" step="0.5" value="1.5"`) {
		t.Errorf("double bounds not honoured:\n%s", out)
	}
}

func TestRenderValuesPrefill(t *testing.T) {
	doc := `{"properties": {
		"name": {"widget": "lineedit"},
		"age": {"type": "integer"},
		"active": {"type": "boolean"},
		"color": {"widget": "combobox", "enum": ["red", "green"]}
	}}`
	out := renderDoc(t, doc, render.Options{Values: map[string]any{
		"name":   "Ada",
		"age":    42,
		"active": true,
		"color":  "green",
	}})

	for _, want := range []string{
		`name="name" value="Ada"`,
		`name="age" min="0" max="100" step="1" value="42"`,
		`name="active" checked`,
		`<option value="green" selected>green</option>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRenderGroupAndRadio(t *testing.T) {
	doc := `{"properties": {
		"profile": {"widget": "group", "title": "Profile", "properties": {
			"name": {"widget": "lineedit"}
		}},
		"size": {"widget": "radio", "enum": ["small", "large"]}
	}}`
	out := renderDoc(t, doc, render.Options{Values: map[string]any{"size": "large"}})

	if !strings.Contains(out, `<fieldset class="jf-group"><legend>Profile</legend>`) {
		t.Errorf("group missing:\n%s", out)
	}
	if !strings.Contains(out, `<input type="radio" name="size" value="large" checked>`) {
		t.Errorf("radio prefill missing:\n%s", out)
	}
}

func TestRenderToggleUsesDetails(t *testing.T) {
	doc := `{"properties": {
		"extras": {"widget": "toggle", "title": "Extras", "children": {
			"note": {"widget": "lineedit"}
		}}
	}}`
	out := renderDoc(t, doc, render.Options{})

	if !strings.Contains(out, `<details class="jf-toggle"><summary>Extras</summary>`) {
		t.Errorf("toggle details missing:\n%s", out)
	}
	if !strings.Contains(out, `<input type="text" name="note">`) {
		t.Errorf("toggle child missing:\n%s", out)
	}
}

func TestRenderMultiToggleTemplates(t *testing.T) {
	doc := `{"properties": {
		"contacts": {"widget": "multi_toggle", "enum": ["person", "company"], "children_map": {
			"person": {"name": {"widget": "lineedit"}},
			"company": {"org": {"widget": "lineedit"}}
		}}
	}}`
	out := renderDoc(t, doc, render.Options{})

	for _, want := range []string{
		`<div class="jf-multi" data-field="contacts">`,
		`<select name="contacts_selector">`,
		`<button type="button" data-action="add">[+]</button>`,
		`<template data-key="company">`,
		`<template data-key="person">`,
		`name="org"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRenderButtonCarriesCallback(t *testing.T) {
	doc := `{"properties": {
		"save": {"widget": "button", "callback": "on_save"}
	}}`
	out := renderDoc(t, doc, render.Options{})

	if !strings.Contains(out, `<button type="button" name="save" data-callback="on_save">Submit</button>`) {
		t.Errorf("button markup wrong:\n%s", out)
	}
}

func TestRenderLabelSanitisesText(t *testing.T) {
	doc := `{"properties": {
		"note": {"widget": "label", "text": "Keep <b>bold</b><script>alert(1)</script>"}
	}}`
	out := renderDoc(t, doc, render.Options{})

	if !strings.Contains(out, "Keep <b>bold</b>") {
		t.Errorf("allowed markup stripped:\n%s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("script not stripped:\n%s", out)
	}
}

func TestRenderUnrecognisedFieldSkipped(t *testing.T) {
	doc := `{"properties": {
		"mystery": {"widget": "hologram"},
		"name": {"widget": "lineedit"}
	}}`
	out := renderDoc(t, doc, render.Options{})

	if strings.Contains(out, "mystery") {
		t.Errorf("unrecognised field rendered:\n%s", out)
	}
	if !strings.Contains(out, `name="name"`) {
		t.Errorf("valid field missing:\n%s", out)
	}
}

func TestRenderStrategyClasses(t *testing.T) {
	doc := `{"properties": {"name": {"widget": "lineedit", "title": "Name"}}}`

	grid := renderDoc(t, doc, render.Options{Strategy: form.StrategyGrid})
	if !strings.Contains(grid, `class="jsonform jsonform--grid"`) {
		t.Errorf("grid class missing:\n%s", grid)
	}
	if !strings.Contains(grid, `<span class="jf-cell jf-cell-label">Name</span>`) {
		t.Errorf("grid label cell missing:\n%s", grid)
	}

	paired := renderDoc(t, doc, render.Options{Strategy: form.StrategyPaired})
	if !strings.Contains(paired, `<label class="jf-title">Name</label>`) {
		t.Errorf("paired title missing:\n%s", paired)
	}
}

func TestRenderThemeTokens(t *testing.T) {
	doc := `{"properties": {"name": {"widget": "lineedit"}}}`
	out := renderDoc(t, doc, render.Options{Theme: &theme.Selection{
		Theme: "dusk",
		Manifest: &theme.Manifest{
			Name: "dusk",
			Tokens: map[string]string{
				"color-bg": "#111",
				"color-fg": "#eee",
			},
		},
	}})

	if !strings.Contains(out, `data-theme="dusk"`) {
		t.Errorf("theme attribute missing:\n%s", out)
	}
	if !strings.Contains(out, `--color-bg: #111;`) || !strings.Contains(out, `--color-fg: #eee;`) {
		t.Errorf("theme tokens missing:\n%s", out)
	}
}
