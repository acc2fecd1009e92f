package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHarvestDefaultsRoundTrip(t *testing.T) {
	f := mustBuild(t, `{"properties":{
		"name":{"type":"string"},
		"bio":{"widget":"textarea"},
		"subscribed":{"type":"boolean"},
		"age":{"type":"integer"},
		"score":{"type":"number"},
		"color":{"type":"string","enum":["red","green"]},
		"size":{"widget":"radio","enum":["S","M"]}
	}}`)

	want := map[string]any{
		"name":       "",
		"bio":        "",
		"subscribed": false,
		"age":        0,
		"score":      0.0,
		"color":      "red",
		// size omitted: no radio member selected
	}
	if diff := cmp.Diff(want, f.Data()); diff != "" {
		t.Fatalf("harvest mismatch (-want +got):\n%s", diff)
	}
}

func TestHarvestBoundedInteger(t *testing.T) {
	f := mustBuild(t, `{"properties":{"age":{"type":"integer","minimum":0,"maximum":120}}}`)

	want := map[string]any{"age": 0}
	if diff := cmp.Diff(want, f.Data()); diff != "" {
		t.Fatalf("harvest mismatch (-want +got):\n%s", diff)
	}
}

func TestHarvestRadioSelection(t *testing.T) {
	f := mustBuild(t, `{"properties":{"size":{"widget":"radio","enum":["S","M","L"]}}}`)

	entry, _ := f.Fields().Get("size")
	entry.Group[1].SetValue(true)

	want := map[string]any{"size": "M"}
	if diff := cmp.Diff(want, f.Data()); diff != "" {
		t.Fatalf("harvest mismatch (-want +got):\n%s", diff)
	}
}

func TestHarvestRadioFirstMatchWins(t *testing.T) {
	f := mustBuild(t, `{"properties":{"size":{"widget":"radio","enum":["S","M"]}}}`)

	entry, _ := f.Fields().Get("size")
	entry.Group[0].SetValue(true)
	entry.Group[1].SetValue(true)

	if got := f.Data()["size"]; got != "S" {
		t.Fatalf("expected first checked member, got %v", got)
	}
}

func TestHarvestEditedValues(t *testing.T) {
	f := mustBuild(t, `{"properties":{
		"name":{"type":"string"},
		"subscribed":{"type":"boolean"},
		"age":{"type":"integer"}
	}}`)

	name, _ := f.Fields().Get("name")
	name.Control.SetValue("Ada")
	subscribed, _ := f.Fields().Get("subscribed")
	subscribed.Control.SetValue(true)
	age, _ := f.Fields().Get("age")
	age.Control.SetValue(36)

	want := map[string]any{"name": "Ada", "subscribed": true, "age": 36}
	if diff := cmp.Diff(want, f.Data()); diff != "" {
		t.Fatalf("harvest mismatch (-want +got):\n%s", diff)
	}
}

func TestHarvestToggleChildrenAreFlat(t *testing.T) {
	f := mustBuild(t, `{"properties":{
		"details":{"widget":"toggle","children":{
			"note":{"type":"string"}
		}}
	}}`)

	note, _ := f.Fields().Get("note")
	note.Control.SetValue("hidden but live")

	data := f.Data()
	if _, present := data["details"]; present {
		t.Fatal("toggle composite itself must not harvest")
	}
	if got := data["note"]; got != "hidden but live" {
		t.Fatalf("expected flat child value, got %v", got)
	}
}

func TestHarvestMultiToggleInstances(t *testing.T) {
	f := mustBuild(t, multiToggleDoc)

	data := f.Data()
	if _, present := data["contacts"]; present {
		t.Fatal("empty multi_toggle must omit its key")
	}

	entry, _ := f.Fields().Get("contacts")
	multi := entry.Multi
	multi.AddButton.(*stubControl).activate()
	multi.AddButton.(*stubControl).activate()

	name, _ := multi.Instances()[1].Fields().Get("name")
	name.Control.SetValue("Grace")

	want := map[string]any{"contacts": []map[string]any{
		{"name": ""},
		{"name": "Grace"},
	}}
	if diff := cmp.Diff(want, f.Data()); diff != "" {
		t.Fatalf("harvest mismatch (-want +got):\n%s", diff)
	}
}

func TestBindCallbacks(t *testing.T) {
	f := mustBuild(t, `{"properties":{
		"submit":{"widget":"button","callback":"on_submit"},
		"reset":{"widget":"button","callback":"on_reset"},
		"plain":{"widget":"button"}
	}}`)

	fired := 0
	f.BindCallbacks(map[string]func(){
		"on_submit": func() { fired++ },
		// on_reset missing from the table: silent no-op
	})

	submit, _ := f.Buttons().Get("submit")
	submit.(*stubControl).activate()
	if fired != 1 {
		t.Fatalf("expected callback to fire once, got %d", fired)
	}

	reset, _ := f.Buttons().Get("reset")
	reset.(*stubControl).activate()
	plain, _ := f.Buttons().Get("plain")
	plain.(*stubControl).activate()
	if fired != 1 {
		t.Fatalf("unbound buttons must not fire, got %d", fired)
	}
}

func TestWithValuesPrefill(t *testing.T) {
	f := mustBuild(t, `{"properties":{
		"name":{"type":"string"},
		"size":{"widget":"radio","enum":["S","M"]},
		"unknown_target":{"type":"string"}
	}}`, WithValues(map[string]any{
		"name":    "Ada",
		"size":    "M",
		"missing": "ignored",
	}))

	want := map[string]any{
		"name":           "Ada",
		"size":           "M",
		"unknown_target": "",
	}
	if diff := cmp.Diff(want, f.Data()); diff != "" {
		t.Fatalf("harvest mismatch (-want +got):\n%s", diff)
	}
}
