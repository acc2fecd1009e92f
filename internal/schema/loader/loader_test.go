package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	pkgschema "github.com/goliatone/go-jsonform/pkg/schema"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.json")
	if err := os.WriteFile(path, []byte(`{"name":{"widget":"lineedit"}}`), 0o600); err != nil {
		t.Fatalf("write schema: %v", err)
	}

	l := New(pkgschema.NewLoaderOptions())
	doc, err := l.Load(context.Background(), pkgschema.SourceFromFile(path))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := string(doc.Raw()); got != `{"name":{"widget":"lineedit"}}` {
		t.Fatalf("unexpected document payload: %s", got)
	}
}

func TestLoadFromFS(t *testing.T) {
	files := fstest.MapFS{
		"schemas/form.yaml": {Data: []byte("properties:\n  name:\n    widget: lineedit\n")},
	}

	l := New(pkgschema.NewLoaderOptions(pkgschema.WithLoaderFS(files)))
	doc, err := l.Load(context.Background(), pkgschema.SourceFromFS("schemas/form.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	s, err := doc.Parse()
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	field, ok := s.Fields().Get("name")
	if !ok {
		t.Fatal("expected field \"name\" in parsed schema")
	}
	if field.Widget != "lineedit" {
		t.Fatalf("unexpected widget: %s", field.Widget)
	}
}

func TestLoadFromFSWithoutFilesystem(t *testing.T) {
	l := New(pkgschema.NewLoaderOptions())
	if _, err := l.Load(context.Background(), pkgschema.SourceFromFS("missing.json")); err == nil {
		t.Fatal("expected error when no fs.FS is configured")
	}
}

func TestLoadHTTPDisabledByDefault(t *testing.T) {
	l := New(pkgschema.NewLoaderOptions())
	if _, err := l.Load(context.Background(), pkgschema.SourceFromURL("http://localhost/schema.json")); err == nil {
		t.Fatal("expected error when http support is disabled")
	}
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"age":{"widget":"spinbox"}}`))
	}))
	defer srv.Close()

	l := New(pkgschema.NewLoaderOptions(pkgschema.WithHTTPFallback(true)))
	doc, err := l.Load(context.Background(), pkgschema.SourceFromURL(srv.URL))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := string(doc.Raw()); got != `{"age":{"widget":"spinbox"}}` {
		t.Fatalf("unexpected document payload: %s", got)
	}
}

func TestLoadHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	l := New(pkgschema.NewLoaderOptions(pkgschema.WithHTTPFallback(true)))
	if _, err := l.Load(context.Background(), pkgschema.SourceFromURL(srv.URL)); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestLoadNilSource(t *testing.T) {
	l := New(pkgschema.NewLoaderOptions())
	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New(pkgschema.NewLoaderOptions())
	if _, err := l.Load(ctx, pkgschema.SourceFromFile("anything.json")); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
