package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/zbyte64/micromodels-forms/pkg/forms"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetToggle         = "toggle"
	WidgetSelect         = "select"
	WidgetRepeater       = "repeater"
	WidgetSubform        = "subform"
	WidgetTextArea       = "textarea"
	WidgetDatetimePicker = "datetime-picker"
	WidgetFilePicker     = "file-picker"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field forms.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on explicit per-field overrides
// or registered matchers. Higher priority wins; ties fall back to
// registration order. An empty registry never resolves a widget.
//
// The rule slice is kept in evaluation order, re-sorted once per Register
// call rather than on every Resolve.
type Registry struct {
	mu    sync.RWMutex
	seq   int
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// NewEmptyRegistry constructs a registry with no matchers.
func NewEmptyRegistry() *Registry {
	return &Registry{}
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    r.seq,
	})
	sort.SliceStable(r.rules, func(i, j int) bool {
		if r.rules[i].priority == r.rules[j].priority {
			return r.rules[i].order < r.rules[j].order
		}
		return r.rules[i].priority > r.rules[j].priority
	})
}

// Resolve returns the widget name for a field. An explicit Widget value on
// the field is honoured before matcher evaluation.
func (r *Registry) Resolve(field forms.Field) (string, bool) {
	if explicit := strings.TrimSpace(field.Widget); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Decorate applies registry resolution to every field, including list
// elements and nested sub-forms, filling Widget when it is empty.
func (r *Registry) Decorate(fields []forms.NamedField) ([]forms.NamedField, error) {
	if r == nil || len(fields) == 0 {
		return fields, nil
	}
	decorated := make([]forms.NamedField, len(fields))
	for idx, entry := range fields {
		field, err := r.decorateField(entry.Field)
		if err != nil {
			return nil, err
		}
		decorated[idx] = forms.NamedField{Name: entry.Name, Field: field}
	}
	return decorated, nil
}

func (r *Registry) decorateField(field forms.Field) (forms.Field, error) {
	if widget, ok := r.Resolve(field); ok && field.Widget == "" {
		field.Widget = widget
	}

	if field.Items != nil {
		item, err := r.decorateField(*field.Items)
		if err != nil {
			return forms.Field{}, err
		}
		field.Items = &item
	}
	if field.SubForm != nil {
		nested, err := r.Decorate(field.SubForm.Fields())
		if err != nil {
			return forms.Field{}, err
		}
		sub, err := forms.NewForm(field.SubForm.Name(), nested)
		if err != nil {
			return forms.Field{}, err
		}
		field.SubForm = sub
	}
	return field, nil
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetToggle, 90, func(field forms.Field) bool {
		return field.Type == forms.FieldTypeBoolean
	})

	r.Register(WidgetSelect, 80, func(field forms.Field) bool {
		if field.Type == forms.FieldTypeList || field.Type == forms.FieldTypeSubForm {
			return false
		}
		return len(field.Choices) > 0
	})

	r.Register(WidgetRepeater, 70, func(field forms.Field) bool {
		return field.Type == forms.FieldTypeList
	})

	r.Register(WidgetSubform, 60, func(field forms.Field) bool {
		return field.Type == forms.FieldTypeSubForm
	})

	r.Register(WidgetTextArea, 50, func(field forms.Field) bool {
		return field.Type == forms.FieldTypeTextArea
	})

	r.Register(WidgetDatetimePicker, 40, func(field forms.Field) bool {
		return field.Type == forms.FieldTypeDate || field.Type == forms.FieldTypeDateTime
	})

	r.Register(WidgetFilePicker, 30, func(field forms.Field) bool {
		return field.Type == forms.FieldTypeFile || field.Type == forms.FieldTypeURIFile
	})
}
