package convert

import (
	"errors"
	"fmt"

	"github.com/zbyte64/micromodels-forms/pkg/forms"
	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

// ErrOnlyAndExclude is returned when a build supplies both an inclusion and
// an exclusion filter. Silently preferring one over the other masks
// configuration mistakes.
var ErrOnlyAndExclude = errors.New("convert: only and exclude filters are mutually exclusive")

// BuildOptions configures one builder invocation.
type BuildOptions struct {
	// Only retains just the named fields, in declaration order. Names that do
	// not exist on the model are ignored.
	Only []string
	// Exclude drops the named fields. Mutually exclusive with Only.
	Exclude []string
	// FieldArgs maps field names to per-field overrides.
	FieldArgs map[string]FieldArgs
	// FailOnSkip turns a skipped field into a build error.
	FailOnSkip bool
	// OnSkip observes skipped fields. Called in declaration order.
	OnSkip func(name, reason string)
}

// ModelFields converts the model's declared fields in declaration order,
// omitting fields whose conversion is skipped unless FailOnSkip is set.
func (c *Converter) ModelFields(model *micromodel.Model, opts BuildOptions) ([]forms.NamedField, error) {
	if model == nil {
		return nil, errors.New("convert: model is required")
	}
	if len(opts.Only) > 0 && len(opts.Exclude) > 0 {
		return nil, ErrOnlyAndExclude
	}

	var only map[string]struct{}
	if len(opts.Only) > 0 {
		only = make(map[string]struct{}, len(opts.Only))
		for _, name := range opts.Only {
			only[name] = struct{}{}
		}
	}
	var exclude map[string]struct{}
	if len(opts.Exclude) > 0 {
		exclude = make(map[string]struct{}, len(opts.Exclude))
		for _, name := range opts.Exclude {
			exclude[name] = struct{}{}
		}
	}

	var fields []forms.NamedField
	for _, field := range model.Fields() {
		if only != nil {
			if _, keep := only[field.Name]; !keep {
				continue
			}
		} else if exclude != nil {
			if _, drop := exclude[field.Name]; drop {
				continue
			}
		}

		result, err := c.Convert(model, field, opts.FieldArgs[field.Name])
		if err != nil {
			return nil, err
		}
		if result.Status == StatusSkipped {
			if opts.FailOnSkip {
				return nil, fmt.Errorf("convert: field %q skipped: %s", field.Name, result.Reason)
			}
			if opts.OnSkip != nil {
				opts.OnSkip(field.Name, result.Reason)
			}
			continue
		}
		fields = append(fields, forms.NamedField{Name: field.Name, Field: result.Field})
	}
	return fields, nil
}

// ModelForm assembles the converted fields into a form named
// "<ModelName>Form".
func (c *Converter) ModelForm(model *micromodel.Model, opts BuildOptions) (*forms.Form, error) {
	fields, err := c.ModelFields(model, opts)
	if err != nil {
		return nil, err
	}
	return forms.NewForm(model.Name()+"Form", fields)
}
