package micromodel

import (
	"errors"
	"fmt"
)

// Model is an ordered collection of field declarations. Declaration order is
// the order fields were passed to New and is preserved through every
// downstream transformation.
type Model struct {
	name   string
	fields []Field
	index  map[string]int
}

// New constructs a Model from the supplied field declarations. Field names
// must be unique and non-empty.
func New(name string, fields ...Field) (*Model, error) {
	if name == "" {
		return nil, errors.New("micromodel: model name is required")
	}

	index := make(map[string]int, len(fields))
	for i, field := range fields {
		if field.Name == "" {
			return nil, fmt.Errorf("micromodel: model %q has a field with no name at position %d", name, i)
		}
		if field.Kind == "" {
			return nil, fmt.Errorf("micromodel: field %q has no kind", field.Name)
		}
		if _, exists := index[field.Name]; exists {
			return nil, fmt.Errorf("micromodel: duplicate field %q on model %q", field.Name, name)
		}
		if err := validateComposite(field); err != nil {
			return nil, err
		}
		index[field.Name] = i
	}

	return &Model{
		name:   name,
		fields: append([]Field(nil), fields...),
		index:  index,
	}, nil
}

// MustNew panics if the model cannot be created. Useful for package-level
// declarations and tests.
func MustNew(name string, fields ...Field) *Model {
	model, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return model
}

func validateComposite(field Field) error {
	switch field.Kind {
	case KindModel, KindModelCollection:
		if field.Ref == nil {
			return fmt.Errorf("micromodel: field %q kind %q requires a referenced model", field.Name, field.Kind)
		}
	case KindFieldCollection:
		if field.Elem == nil {
			return fmt.Errorf("micromodel: field %q requires an element field", field.Name)
		}
		if field.Elem.IsComposite() {
			return fmt.Errorf("micromodel: field %q element must be a scalar kind, got %q", field.Name, field.Elem.Kind)
		}
	}
	return nil
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// Fields returns the declared fields in declaration order. The slice is a
// defensive copy.
func (m *Model) Fields() []Field {
	return append([]Field(nil), m.fields...)
}

// Field looks up a declared field by name.
func (m *Model) Field(name string) (Field, bool) {
	idx, ok := m.index[name]
	if !ok {
		return Field{}, false
	}
	return m.fields[idx], true
}

// Len returns the number of declared fields.
func (m *Model) Len() int {
	return len(m.fields)
}

// FieldNames returns field names in declaration order.
func (m *Model) FieldNames() []string {
	names := make([]string, 0, len(m.fields))
	for _, field := range m.fields {
		names = append(names, field.Name)
	}
	return names
}
