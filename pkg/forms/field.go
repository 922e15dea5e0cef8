package forms

// FieldType is the simplified enum of form input kinds.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextArea FieldType = "textarea"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeDecimal  FieldType = "decimal"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeSelect   FieldType = "select"
	FieldTypeDate     FieldType = "date"
	FieldTypeDateTime FieldType = "datetime"
	FieldTypeFile     FieldType = "file"
	FieldTypeURI      FieldType = "uri"
	FieldTypeURIFile  FieldType = "uri-file"
	FieldTypeSubForm  FieldType = "subform"
	FieldTypeList     FieldType = "list"
)

// Choice is a single enumerated option for select inputs.
type Choice struct {
	Value any
	Label string
}

// CoerceFunc converts raw submitted input into the field's value type.
type CoerceFunc func(value any) (any, error)

// Field models an individual form input. Type-specific attributes (Format,
// Choices, Coerce, SubForm, Items) are populated only for the field types
// that use them.
type Field struct {
	Type        FieldType
	Label       string
	Description string
	Default     any
	Validators  []Validator
	Filters     []Filter
	Format      string
	Choices     []Choice
	Coerce      CoerceFunc
	SubForm     *Form
	Items       *Field
	Widget      string
}

// HasValidator reports whether a validator of the given kind is attached.
func (f Field) HasValidator(kind string) bool {
	for _, v := range f.Validators {
		if v != nil && v.Kind() == kind {
			return true
		}
	}
	return false
}

// ApplyFilters runs the field's filters over a value in registration order.
func (f Field) ApplyFilters(value any) any {
	for _, filter := range f.Filters {
		if filter == nil {
			continue
		}
		value = filter(value)
	}
	return value
}

// Validate runs the field's validators against a raw string value. The
// optional validator short-circuits the chain for empty input.
func (f Field) Validate(value string) error {
	for _, v := range f.Validators {
		if v == nil {
			continue
		}
		err := v.Validate(value)
		if err == nil {
			continue
		}
		if err == ErrStopValidation {
			return nil
		}
		return err
	}
	return nil
}

// NamedField pairs a field with the model attribute it was generated from.
type NamedField struct {
	Name  string
	Field Field
}
