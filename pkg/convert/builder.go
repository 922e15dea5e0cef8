package convert

import (
	internalconvert "github.com/zbyte64/micromodels-forms/internal/convert"
	"github.com/zbyte64/micromodels-forms/pkg/forms"
	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

// Option configures one builder invocation.
type Option func(*buildConfig)

type buildConfig struct {
	converter *Converter
	opts      internalconvert.BuildOptions
}

// Only retains just the named fields, preserving declaration order.
func Only(names ...string) Option {
	return func(cfg *buildConfig) {
		cfg.opts.Only = append(cfg.opts.Only, names...)
	}
}

// Exclude drops the named fields. Mutually exclusive with Only.
func Exclude(names ...string) Option {
	return func(cfg *buildConfig) {
		cfg.opts.Exclude = append(cfg.opts.Exclude, names...)
	}
}

// WithFieldArgs supplies per-field overrides keyed by field name.
func WithFieldArgs(args map[string]FieldArgs) Option {
	return func(cfg *buildConfig) {
		cfg.opts.FieldArgs = args
	}
}

// WithConverter uses the supplied converter instead of a fresh default one.
func WithConverter(converter *Converter) Option {
	return func(cfg *buildConfig) {
		cfg.converter = converter
	}
}

// WithFailOnSkip turns a skipped field into a build error instead of omitting
// it from the output.
func WithFailOnSkip() Option {
	return func(cfg *buildConfig) {
		cfg.opts.FailOnSkip = true
	}
}

// WithSkipObserver calls fn for every skipped field, in declaration order.
func WithSkipObserver(fn func(name, reason string)) Option {
	return func(cfg *buildConfig) {
		cfg.opts.OnSkip = fn
	}
}

func resolve(options []Option) (*Converter, internalconvert.BuildOptions) {
	cfg := buildConfig{}
	for _, opt := range options {
		opt(&cfg)
	}
	converter := cfg.converter
	if converter == nil {
		converter = NewConverter()
	}
	return converter, cfg.opts
}

// ModelFields converts the model's declared fields in declaration order into
// named destination fields. Fields whose kind has no registered conversion
// are omitted unless WithFailOnSkip is set.
func ModelFields(model *micromodel.Model, options ...Option) ([]forms.NamedField, error) {
	converter, opts := resolve(options)
	return converter.ModelFields(model, opts)
}

// ModelForm converts the model and assembles the result into a form named
// "<ModelName>Form".
func ModelForm(model *micromodel.Model, options ...Option) (*forms.Form, error) {
	converter, opts := resolve(options)
	return converter.ModelForm(model, opts)
}
