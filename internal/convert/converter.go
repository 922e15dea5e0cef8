package convert

import (
	"fmt"

	"github.com/zbyte64/micromodels-forms/pkg/forms"
	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

// Options configures a Converter. Options are constructed by the public
// adapter in pkg/convert and passed into New.
type Options struct {
	// Funcs overrides or extends the registry, keyed by field kind.
	Funcs map[micromodel.Kind]Func
	// NoDefaults starts from an empty registry instead of the default table.
	NoDefaults bool
	// Labeler derives a label from a field name when no verbose name is set.
	Labeler func(string) string
	// Sanitizer cleans help text before it becomes a field description.
	Sanitizer func(string) string
}

// Converter maps model fields onto destination form fields through an
// explicit registry keyed by field kind. The registry is fixed at
// construction; there is no runtime registration.
type Converter struct {
	funcs     map[micromodel.Kind]Func
	labeler   func(string) string
	sanitizer func(string) string
}

// New constructs a Converter from pre-resolved options.
func New(options Options) *Converter {
	funcs := make(map[micromodel.Kind]Func)
	if !options.NoDefaults {
		for kind, fn := range defaultFuncs() {
			funcs[kind] = fn
		}
	}
	for kind, fn := range options.Funcs {
		if fn == nil {
			delete(funcs, kind)
			continue
		}
		funcs[kind] = fn
	}

	labeler := options.Labeler
	if labeler == nil {
		labeler = DefaultLabeler
	}
	sanitizer := options.Sanitizer
	if sanitizer == nil {
		sanitizer = SanitizeHelp
	}

	return &Converter{funcs: funcs, labeler: labeler, sanitizer: sanitizer}
}

// Kinds reports which field kinds the registry can convert.
func (c *Converter) Kinds() []micromodel.Kind {
	kinds := make([]micromodel.Kind, 0, len(c.funcs))
	for kind := range c.funcs {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Convert produces the destination field for a single model field, or a
// skipped result when the field's kind has no registered conversion.
func (c *Converter) Convert(model *micromodel.Model, field micromodel.Field, args FieldArgs) (Result, error) {
	fn, ok := c.funcs[field.Kind]
	if !ok {
		return Skipped(fmt.Sprintf("no converter registered for kind %q", field.Kind)), nil
	}

	req := Request{
		Model:  model,
		Field:  field,
		Args:   args,
		Kwargs: c.kwargs(field, args),
	}
	result, err := fn(c, req)
	if err != nil {
		return Result{}, fmt.Errorf("convert: field %q: %w", field.Name, err)
	}
	return result, nil
}

// kwargs assembles the base keyword set, merges overrides on top, and
// prepends the optional validator for non-required fields.
func (c *Converter) kwargs(field micromodel.Field, args FieldArgs) Kwargs {
	kw := Kwargs{
		Label:       c.label(field),
		Description: c.sanitizer(field.Help),
		Default:     field.Default,
		Validators:  []forms.Validator{},
		Filters:     []forms.Filter{},
	}

	if args.Label != "" {
		kw.Label = args.Label
	}
	if args.Description != "" {
		kw.Description = c.sanitizer(args.Description)
	}
	switch {
	case args.ClearDefault:
		kw.Default = nil
	case args.Default != nil:
		kw.Default = args.Default
	}
	if args.Validators != nil {
		kw.Validators = append([]forms.Validator(nil), args.Validators...)
	}
	if args.Filters != nil {
		kw.Filters = append([]forms.Filter(nil), args.Filters...)
	}
	if len(args.Choices) > 0 {
		kw.Choices = append([]forms.Choice(nil), args.Choices...)
	}
	if args.Format != "" {
		kw.Format = args.Format
	}
	if args.Widget != "" {
		kw.Widget = args.Widget
	}

	if !field.Required {
		kw.Validators = append([]forms.Validator{forms.Optional()}, kw.Validators...)
	}
	return kw
}

func (c *Converter) label(field micromodel.Field) string {
	if field.Label != "" {
		return field.Label
	}
	label := c.labeler(field.Name)
	switch field.Kind {
	case micromodel.KindModelCollection, micromodel.KindFieldCollection:
		return PluralizeLabel(label)
	}
	return label
}
