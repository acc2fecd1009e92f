// Package loader fetches schema documents from files, fs.FS entries, or
// HTTP URLs behind the public schema.Loader interface.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	pkgschema "github.com/goliatone/go-jsonform/pkg/schema"
)

// Loader implements pkgschema.Loader, dispatching on the source kind.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgschema.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgschema.LoaderOptions) pkgschema.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgschema.Source) (pkgschema.Document, error) {
	if src == nil {
		return pkgschema.Document{}, errors.New("schema loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgschema.Document{}, err
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgschema.SourceKindFile:
		data, err = l.loadFile(src.Location())
	case pkgschema.SourceKindFS:
		data, err = l.loadFromFS(src.Location())
	case pkgschema.SourceKindURL:
		if !l.allowHTTP {
			return pkgschema.Document{}, errors.New("schema loader: http support disabled")
		}
		data, err = l.loadHTTP(ctx, src.Location())
	default:
		err = errors.New("schema loader: unsupported source kind")
	}
	if err != nil {
		return pkgschema.Document{}, err
	}

	return pkgschema.NewDocument(src, data)
}

func (l *Loader) loadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("schema loader: file path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("schema loader: resolve path: %w", err)
	}
	return os.ReadFile(abs)
}

func (l *Loader) loadFromFS(name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("schema loader: fs path is required")
	}
	if l.fs == nil {
		return nil, errors.New("schema loader: fs is nil")
	}
	return fs.ReadFile(l.fs, name)
}

func (l *Loader) loadHTTP(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("schema loader: url is required")
	}

	// Per-request deadline on top of any client-level timeout.
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("schema loader: build request: %w", err)
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("schema loader: unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
