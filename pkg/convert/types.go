package convert

import internalconvert "github.com/zbyte64/micromodels-forms/internal/convert"

// FieldArgs re-exports the internal per-field override set.
type FieldArgs = internalconvert.FieldArgs

// Result is the tagged outcome of a field conversion.
type Result = internalconvert.Result

// Status tags a conversion outcome.
type Status = internalconvert.Status

const (
	StatusConverted = internalconvert.StatusConverted
	StatusSkipped   = internalconvert.StatusSkipped
)

// Kwargs is the merged keyword set handed to conversion functions.
type Kwargs = internalconvert.Kwargs

// Request carries one field conversion through the registry.
type Request = internalconvert.Request

// Func converts a single model field into a destination form field.
type Func = internalconvert.Func

// Converter dispatches model fields through an explicit registry keyed by
// field kind.
type Converter = internalconvert.Converter

// ErrOnlyAndExclude is returned when both inclusion and exclusion filters are
// supplied to a build.
var ErrOnlyAndExclude = internalconvert.ErrOnlyAndExclude

// Converted wraps a destination field in a successful result.
var Converted = internalconvert.Converted

// Skipped records why no destination field was produced.
var Skipped = internalconvert.Skipped

// Simple returns a conversion that forwards the keyword set to a fixed
// destination field type.
var Simple = internalconvert.Simple
