package convert

import (
	internalconvert "github.com/zbyte64/micromodels-forms/internal/convert"
	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

// ConverterOption configures converter construction.
type ConverterOption func(*converterOptions)

type converterOptions struct {
	funcs      map[micromodel.Kind]Func
	noDefaults bool
	labeler    func(string) string
	sanitizer  func(string) string
}

// WithFunc registers or overrides the conversion for a field kind. Passing a
// nil func removes the kind from the registry.
func WithFunc(kind micromodel.Kind, fn Func) ConverterOption {
	return func(opts *converterOptions) {
		if opts.funcs == nil {
			opts.funcs = make(map[micromodel.Kind]Func)
		}
		opts.funcs[kind] = fn
	}
}

// WithoutDefaults starts from an empty registry instead of the default
// conversion table.
func WithoutDefaults() ConverterOption {
	return func(opts *converterOptions) {
		opts.noDefaults = true
	}
}

// WithLabeler overrides how labels are derived from field names.
func WithLabeler(labeler func(string) string) ConverterOption {
	return func(opts *converterOptions) {
		opts.labeler = labeler
	}
}

// WithSanitizer overrides how help text is cleaned before becoming a field
// description.
func WithSanitizer(sanitizer func(string) string) ConverterOption {
	return func(opts *converterOptions) {
		opts.sanitizer = sanitizer
	}
}

// NewConverter builds a converter with the default table, optionally extended
// or overridden per kind.
func NewConverter(options ...ConverterOption) *Converter {
	cfg := converterOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	return internalconvert.New(internalconvert.Options{
		Funcs:      cfg.funcs,
		NoDefaults: cfg.noDefaults,
		Labeler:    cfg.labeler,
		Sanitizer:  cfg.sanitizer,
	})
}
