package convert

import (
	"github.com/zbyte64/micromodels-forms/pkg/forms"
	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

// FieldArgs carries per-field overrides merged on top of the base keyword set
// assembled from the model field. Zero values mean "no override"; Validators
// and Filters replace the base lists entirely when non-nil.
type FieldArgs struct {
	Label       string
	Description string
	Default     any
	// ClearDefault drops the model-level default. Default alone cannot
	// express an explicit nil override.
	ClearDefault bool
	Validators   []forms.Validator
	Filters      []forms.Filter
	Choices      []forms.Choice
	Format       string
	Widget       string
}

// Status tags a conversion outcome.
type Status string

const (
	// StatusConverted marks a successful conversion carrying a field.
	StatusConverted Status = "converted"
	// StatusSkipped marks a field whose kind had no registered converter.
	StatusSkipped Status = "skipped"
)

// Result is the tagged outcome of a single field conversion. A skipped result
// is not an error; callers decide whether to omit, warn, or fail.
type Result struct {
	Status Status
	Field  forms.Field
	Reason string
}

// Converted wraps a destination field in a successful result.
func Converted(field forms.Field) Result {
	return Result{Status: StatusConverted, Field: field}
}

// Skipped records why no destination field was produced.
func Skipped(reason string) Result {
	return Result{Status: StatusSkipped, Reason: reason}
}

// Kwargs is the base keyword set handed to conversion functions: label, help
// text, default value, and the validator/filter lists, with overrides already
// merged and the optional validator already prepended for non-required
// fields.
type Kwargs struct {
	Label       string
	Description string
	Default     any
	Validators  []forms.Validator
	Filters     []forms.Filter
	Choices     []forms.Choice
	Format      string
	Widget      string
}

// Field materializes a destination field of the given type from the keyword
// set.
func (kw Kwargs) Field(t forms.FieldType) forms.Field {
	return forms.Field{
		Type:        t,
		Label:       kw.Label,
		Description: kw.Description,
		Default:     kw.Default,
		Validators:  kw.Validators,
		Filters:     kw.Filters,
		Choices:     kw.Choices,
		Format:      kw.Format,
		Widget:      kw.Widget,
	}
}

// Request carries one field conversion through the registry.
type Request struct {
	Model  *micromodel.Model
	Field  micromodel.Field
	Args   FieldArgs
	Kwargs Kwargs
}

// Func converts a single model field into a destination form field. The
// converter is passed in so composite conversions can recurse.
type Func func(conv *Converter, req Request) (Result, error)
