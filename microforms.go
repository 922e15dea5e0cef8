package microforms

import (
	"github.com/zbyte64/micromodels-forms/pkg/convert"
	"github.com/zbyte64/micromodels-forms/pkg/forms"
	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

// FieldArgs re-exports per-field conversion overrides for convenience.
type FieldArgs = convert.FieldArgs

// Definition re-exports the declarative form configuration.
type Definition = convert.Definition

// ModelFields converts a micromodel's declared fields into named form fields
// in declaration order. It is the simplest entry point for callers that
// assemble forms themselves.
func ModelFields(model *micromodel.Model, options ...convert.Option) ([]forms.NamedField, error) {
	return convert.ModelFields(model, options...)
}

// ModelForm converts a micromodel and assembles the result into a form named
// "<ModelName>Form".
func ModelForm(model *micromodel.Model, options ...convert.Option) (*forms.Form, error) {
	return convert.ModelForm(model, options...)
}
