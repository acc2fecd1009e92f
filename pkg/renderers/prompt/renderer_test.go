package prompt

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-jsonform/pkg/render"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	confirm   []bool
	textAreas []string

	infoMessages []string

	inputPos   int
	selectPos  int
	confirmPos int
	textPos    int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func mustSchema(t *testing.T, doc string) *schema.Schema {
	t.Helper()
	s, err := schema.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return s
}

func renderValues(t *testing.T, r *Renderer, s *schema.Schema, options render.Options) map[string]any {
	t.Helper()
	out, err := r.Render(context.Background(), s, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var values map[string]any
	if err := json.Unmarshal(out, &values); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return values
}

func TestRenderStringAndEnum(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"hello"},
		selectIdx: []int{1},
	}
	r := New(WithPromptDriver(driver))

	s := mustSchema(t, `{"properties":{
		"title":{"type":"string"},
		"status":{"type":"string","enum":["draft","published"]}
	}}`)

	want := map[string]any{"title": "hello", "status": "published"}
	if diff := cmp.Diff(want, renderValues(t, r, s, render.Options{})); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if driver.inputPos != 1 || driver.selectPos != 1 {
		t.Fatal("prompts not consumed as expected")
	}
}

func TestRenderNumberValidation(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{"130", "abc", "42"},
	}
	r := New(WithPromptDriver(driver))

	s := mustSchema(t, `{"properties":{"age":{"type":"integer","minimum":0,"maximum":120}}}`)

	want := map[string]any{"age": 42.0}
	if diff := cmp.Diff(want, renderValues(t, r, s, render.Options{})); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infoMessages) != 2 {
		t.Fatalf("expected two validation messages, got %d", len(driver.infoMessages))
	}
}

func TestRenderGroupFlattens(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{"5th Avenue", "10001"},
	}
	r := New(WithPromptDriver(driver))

	s := mustSchema(t, `{"properties":{
		"address":{"widget":"group","title":"Address","properties":{
			"street":{"type":"string"},
			"zip":{"type":"string"}
		}}
	}}`)

	want := map[string]any{"street": "5th Avenue", "zip": "10001"}
	if diff := cmp.Diff(want, renderValues(t, r, s, render.Options{})); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infoMessages) != 1 {
		t.Fatalf("expected group header, got %v", driver.infoMessages)
	}
}

func TestRenderToggleDeclinedSkipsChildren(t *testing.T) {
	driver := &stubDriver{
		confirm: []bool{false},
	}
	r := New(WithPromptDriver(driver))

	s := mustSchema(t, `{"properties":{
		"details":{"widget":"toggle","children":{
			"note":{"type":"string"}
		}}
	}}`)

	values := renderValues(t, r, s, render.Options{})
	if len(values) != 0 {
		t.Fatalf("expected no values for declined toggle, got %v", values)
	}
}

func TestRenderToggleAcceptedFlattensChildren(t *testing.T) {
	driver := &stubDriver{
		confirm: []bool{true},
		inputs:  []string{"remember this"},
	}
	r := New(WithPromptDriver(driver))

	s := mustSchema(t, `{"properties":{
		"details":{"widget":"toggle","children":{
			"note":{"type":"string"}
		}}
	}}`)

	want := map[string]any{"note": "remember this"}
	if diff := cmp.Diff(want, renderValues(t, r, s, render.Options{})); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMultiToggleLoop(t *testing.T) {
	driver := &stubDriver{
		confirm:   []bool{true, true, false},
		selectIdx: []int{0, 0},
		inputs:    []string{"Ada", "Grace"},
	}
	r := New(WithPromptDriver(driver))

	s := mustSchema(t, `{"properties":{
		"contacts":{"widget":"multi_toggle","enum":["person"],"children_map":{
			"person":{"properties":{"name":{"type":"string"}}}
		}}
	}}`)

	want := map[string]any{"contacts": []any{
		map[string]any{"name": "Ada"},
		map[string]any{"name": "Grace"},
	}}
	if diff := cmp.Diff(want, renderValues(t, r, s, render.Options{})); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMultiToggleNoAddsOmitsKey(t *testing.T) {
	driver := &stubDriver{
		confirm: []bool{false},
	}
	r := New(WithPromptDriver(driver))

	s := mustSchema(t, `{"properties":{
		"contacts":{"widget":"multi_toggle","enum":["person"],"children_map":{
			"person":{"properties":{"name":{"type":"string"}}}
		}}
	}}`)

	values := renderValues(t, r, s, render.Options{})
	if _, present := values["contacts"]; present {
		t.Fatal("empty multi_toggle must omit its key")
	}
}

func TestRenderPrefillBecomesDefault(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{"kept"},
	}
	r := New(WithPromptDriver(driver))

	s := mustSchema(t, `{"properties":{"name":{"type":"string"}}}`)

	values := renderValues(t, r, s, render.Options{Values: map[string]any{"name": "Ada"}})
	if values["name"] != "kept" {
		t.Fatalf("expected scripted answer, got %v", values["name"])
	}
}

func TestRenderPrettyOutput(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{"hello"},
	}
	r := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText))

	s := mustSchema(t, `{"properties":{"title":{"type":"string"}}}`)

	out, err := r.Render(context.Background(), s, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "title: hello\n" {
		t.Fatalf("unexpected pretty output: %q", out)
	}
	if r.ContentType() != "text/plain" {
		t.Fatalf("unexpected content type: %s", r.ContentType())
	}
}
