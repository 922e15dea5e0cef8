package modeldef

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source identifies where a model definition document lives: a path on the
// host filesystem, an entry inside an fs.FS, or an HTTP URL. The zero value
// is not a usable source; loaders reject it.
type Source struct {
	kind     SourceKind
	location string
}

// FileSource returns a source for a host filesystem path.
func FileSource(path string) Source {
	return Source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// FSSource returns a source for an entry inside a loader-configured fs.FS.
func FSSource(name string) Source {
	return Source{kind: SourceKindFS, location: name}
}

// URLSource returns a source for an HTTP or HTTPS URL. It panics on a
// malformed or non-HTTP URL to surface configuration mistakes early.
func URLSource(raw string) Source {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		panic(fmt.Sprintf("modeldef: invalid URL %q: %v", raw, err))
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		panic(fmt.Sprintf("modeldef: URL source %q must use http or https", raw))
	}
	return Source{kind: SourceKindURL, location: raw}
}

// Kind reports the loader modality for the source.
func (s Source) Kind() SourceKind {
	return s.kind
}

// Location returns the path, fs entry name, or URL.
func (s Source) Location() string {
	return s.location
}

// IsZero reports whether the source was never initialized.
func (s Source) IsZero() bool {
	return s.kind == ""
}

// String renders the source for error messages.
func (s Source) String() string {
	if s.IsZero() {
		return "<no source>"
	}
	return string(s.kind) + ":" + s.location
}
