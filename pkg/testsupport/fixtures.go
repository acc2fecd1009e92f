// Package testsupport holds fixture helpers shared by package tests and
// example programs.
package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-jsonform/pkg/schema"
)

// LoadDocument reads a fixture and builds a schema.Document using a file
// source. Testing helpers fail fatally to keep contract tests concise.
func LoadDocument(t *testing.T, path string) schema.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (schema.Document, error) {
	if path == "" {
		return schema.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := schema.NewDocument(schema.SourceFromFile(path), data)
	if err != nil {
		return schema.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustParseSchema loads and parses a fixture in one step.
func MustParseSchema(t *testing.T, path string) *schema.Schema {
	t.Helper()

	doc := LoadDocument(t, path)
	s, err := doc.Parse()
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return s
}

// MustLoadValues loads a JSON golden file into a value map.
func MustLoadValues(t *testing.T, path string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// WriteValues writes a harvested-values golden when UPDATE_GOLDENS is
// enabled, keeping snapshot diffs focused on behavioural changes.
func WriteValues(t *testing.T, path string, values map[string]any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		t.Fatalf("marshal values: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}
