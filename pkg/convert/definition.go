package convert

import (
	"errors"

	"github.com/zbyte64/micromodels-forms/pkg/forms"
	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
	"github.com/zbyte64/micromodels-forms/pkg/widgets"
)

// Definition is the declarative configuration for a model-backed form: the
// target model plus field filters, per-field overrides, widget assignments,
// and an optional custom converter. Build replaces the implicit
// class-definition hook of declarative form frameworks with an explicit
// factory call.
type Definition struct {
	Model     *micromodel.Model
	Only      []string
	Exclude   []string
	FieldArgs map[string]FieldArgs
	// Widgets assigns widget names per field, overriding registry matchers.
	Widgets map[string]string
	// Converter defaults to a fresh default-table converter.
	Converter *Converter
	// Registry resolves widgets for fields without an explicit assignment.
	// Nil leaves unassigned fields without a widget.
	Registry *widgets.Registry
	// FailOnSkip turns skipped fields into errors.
	FailOnSkip bool
	// OnSkip observes skipped fields.
	OnSkip func(name, reason string)
}

// Build converts the target model and assembles the ready form.
func (d Definition) Build() (*forms.Form, error) {
	if d.Model == nil {
		return nil, errors.New("convert: definition requires a model")
	}

	options := []Option{}
	if len(d.Only) > 0 {
		options = append(options, Only(d.Only...))
	}
	if len(d.Exclude) > 0 {
		options = append(options, Exclude(d.Exclude...))
	}
	if d.FieldArgs != nil {
		options = append(options, WithFieldArgs(d.FieldArgs))
	}
	if d.Converter != nil {
		options = append(options, WithConverter(d.Converter))
	}
	if d.FailOnSkip {
		options = append(options, WithFailOnSkip())
	}
	if d.OnSkip != nil {
		options = append(options, WithSkipObserver(d.OnSkip))
	}

	fields, err := ModelFields(d.Model, options...)
	if err != nil {
		return nil, err
	}

	for i := range fields {
		if widget, ok := d.Widgets[fields[i].Name]; ok {
			fields[i].Field.Widget = widget
		}
	}
	if d.Registry != nil {
		fields, err = d.Registry.Decorate(fields)
		if err != nil {
			return nil, err
		}
	}

	return forms.NewForm(d.Model.Name()+"Form", fields)
}

// MustBuild panics if the form cannot be built. Useful for package-level
// form declarations.
func (d Definition) MustBuild() *forms.Form {
	form, err := d.Build()
	if err != nil {
		panic(err)
	}
	return form
}
