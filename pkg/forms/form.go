package forms

import (
	"errors"
	"fmt"
)

// Form is an ordered collection of named fields. Forms are assembled once by
// the builder and are read-only afterwards.
type Form struct {
	name   string
	fields []NamedField
	index  map[string]int
}

// NewForm constructs a form from ordered named fields. Field names must be
// unique and non-empty.
func NewForm(name string, fields []NamedField) (*Form, error) {
	if name == "" {
		return nil, errors.New("forms: form name is required")
	}

	index := make(map[string]int, len(fields))
	for i, entry := range fields {
		if entry.Name == "" {
			return nil, fmt.Errorf("forms: form %q has a field with no name at position %d", name, i)
		}
		if _, exists := index[entry.Name]; exists {
			return nil, fmt.Errorf("forms: duplicate field %q on form %q", entry.Name, name)
		}
		index[entry.Name] = i
	}

	return &Form{
		name:   name,
		fields: append([]NamedField(nil), fields...),
		index:  index,
	}, nil
}

// MustNewForm panics if the form cannot be created. Useful for tests.
func MustNewForm(name string, fields []NamedField) *Form {
	form, err := NewForm(name, fields)
	if err != nil {
		panic(err)
	}
	return form
}

// Name returns the form name.
func (f *Form) Name() string {
	return f.name
}

// Fields returns the named fields in assembly order. The slice is a
// defensive copy.
func (f *Form) Fields() []NamedField {
	return append([]NamedField(nil), f.fields...)
}

// Field looks up a field by name.
func (f *Form) Field(name string) (Field, bool) {
	idx, ok := f.index[name]
	if !ok {
		return Field{}, false
	}
	return f.fields[idx].Field, true
}

// FieldNames returns field names in assembly order.
func (f *Form) FieldNames() []string {
	names := make([]string, 0, len(f.fields))
	for _, entry := range f.fields {
		names = append(names, entry.Name)
	}
	return names
}

// Len returns the number of fields on the form.
func (f *Form) Len() int {
	return len(f.fields)
}
