package schema

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches schema documents from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions carries resolved loader configuration.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups.
	FileSystem fs.FS
	// HTTPClient enables SourceKindURL lookups when set.
	HTTPClient *http.Client
	// AllowHTTPFallback enables URL loading with a default client when no
	// HTTPClient is supplied.
	AllowHTTPFallback bool
	// RequestTimeout bounds individual HTTP requests.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions during construction.
type LoaderOption func(*LoaderOptions)

// NewLoaderOptions resolves the supplied options into a LoaderOptions value.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	opts := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}
	return opts
}

// WithLoaderFS supplies the fs.FS backing SourceKindFS lookups.
func WithLoaderFS(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithLoaderHTTPClient supplies a custom HTTP client and enables URL sources.
func WithLoaderHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback toggles URL loading with a default client.
func WithHTTPFallback(allow bool) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = allow
	}
}

// WithRequestTimeout bounds HTTP schema fetches.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.RequestTimeout = timeout
	}
}
