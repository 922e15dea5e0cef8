package modeldef

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches a raw definition document from a source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions holds resolved loader configuration. Implementations live in
// internal/modeldef/loader.
type LoaderOptions struct {
	// FileSystem backs fs sources.
	FileSystem fs.FS
	// HTTPClient backs url sources. When nil and AllowHTTPFallback is set, a
	// default client bounded by RequestTimeout is used.
	HTTPClient *http.Client
	// AllowHTTPFallback enables url sources without an explicit client.
	AllowHTTPFallback bool
	// RequestTimeout bounds HTTP fetches.
	RequestTimeout time.Duration
	// MaxDocumentSize caps loaded payloads in bytes. Zero applies the
	// loader's default cap.
	MaxDocumentSize int64
}

// LoaderOption configures loader construction.
type LoaderOption func(*LoaderOptions)

// NewLoaderOptions resolves options into a LoaderOptions value.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// WithFileSystem supplies the fs.FS backing fs sources.
func WithFileSystem(fsys fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = fsys
	}
}

// WithHTTPClient supplies the client used for url sources.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables url sources using a default client.
func WithHTTPFallback() LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
	}
}

// WithRequestTimeout bounds HTTP document fetches.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.RequestTimeout = timeout
	}
}

// WithMaxDocumentSize caps loaded payloads in bytes.
func WithMaxDocumentSize(limit int64) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.MaxDocumentSize = limit
	}
}
