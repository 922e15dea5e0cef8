package modeldef

import (
	"bytes"
	"errors"
)

// Document is an immutable raw definition payload tied to its source. A
// document always carries a non-blank payload; blank input is rejected at
// construction so adapters never parse nothing.
type Document struct {
	src     Source
	payload []byte
}

// NewDocument validates and wraps a loaded payload.
func NewDocument(src Source, payload []byte) (Document, error) {
	if src.IsZero() {
		return Document{}, errors.New("modeldef: document source is required")
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return Document{}, errors.New("modeldef: document payload is blank")
	}
	return Document{src: src, payload: bytes.Clone(payload)}, nil
}

// MustNewDocument panics if the document cannot be created.
func MustNewDocument(src Source, payload []byte) Document {
	doc, err := NewDocument(src, payload)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin of the document.
func (d Document) Source() Source {
	return d.src
}

// Raw returns a copy of the payload; mutating it does not affect the
// document.
func (d Document) Raw() []byte {
	return bytes.Clone(d.payload)
}

// Location returns the origin's path, fs entry name, or URL.
func (d Document) Location() string {
	return d.src.Location()
}

// Len returns the payload size in bytes.
func (d Document) Len() int {
	return len(d.payload)
}
