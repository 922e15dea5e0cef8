package parser

import (
	"bytes"
	"errors"
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

// document mirrors the on-disk model definition layout. The same structure
// serves both YAML and JSON payloads.
type document struct {
	Models []modelDef `json:"models" yaml:"models"`
}

type modelDef struct {
	Name   string     `json:"name" yaml:"name"`
	Fields []fieldDef `json:"fields" yaml:"fields"`
}

type fieldDef struct {
	Name     string    `json:"name" yaml:"name"`
	Kind     string    `json:"kind" yaml:"kind"`
	Label    string    `json:"label" yaml:"label"`
	Help     string    `json:"help" yaml:"help"`
	Required bool      `json:"required" yaml:"required"`
	Default  any       `json:"default" yaml:"default"`
	Model    string    `json:"model" yaml:"model"`
	Elem     *fieldDef `json:"elem" yaml:"elem"`
}

var knownKinds = func() map[string]micromodel.Kind {
	kinds := []micromodel.Kind{
		micromodel.KindChar, micromodel.KindText, micromodel.KindSlug,
		micromodel.KindPhone, micromodel.KindEmail, micromodel.KindURL,
		micromodel.KindURI, micromodel.KindURIFile, micromodel.KindIPAddress,
		micromodel.KindAuto, micromodel.KindInteger, micromodel.KindSmallInteger,
		micromodel.KindPositiveInteger, micromodel.KindPositiveSmallInteger,
		micromodel.KindDecimal, micromodel.KindFloat, micromodel.KindBoolean,
		micromodel.KindNullBoolean, micromodel.KindDate, micromodel.KindTime,
		micromodel.KindDateTime, micromodel.KindFile, micromodel.KindFilePath,
		micromodel.KindImage, micromodel.KindXML, micromodel.KindJSON,
		micromodel.KindModel, micromodel.KindModelCollection,
		micromodel.KindFieldCollection,
	}
	out := make(map[string]micromodel.Kind, len(kinds))
	for _, kind := range kinds {
		out[string(kind)] = kind
	}
	return out
}()

// Detect reports whether the payload looks like a model definition document:
// a YAML or JSON mapping with a top-level "models" key.
func Detect(raw []byte) bool {
	var probe map[string]any
	if err := unmarshal(raw, &probe); err != nil {
		return false
	}
	_, ok := probe["models"]
	return ok
}

// Parse converts a definition document into micromodels, in document order.
// Model references may point at any model in the same document, including
// models defined later; reference cycles are rejected.
func Parse(raw []byte) ([]*micromodel.Model, error) {
	if len(raw) == 0 {
		return nil, errors.New("modeldef parser: document is empty")
	}

	var doc document
	if err := unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("modeldef parser: decode document: %w", err)
	}
	if len(doc.Models) == 0 {
		return nil, errors.New("modeldef parser: document does not define any models")
	}

	res := &resolver{
		defs:     make(map[string]modelDef, len(doc.Models)),
		built:    make(map[string]*micromodel.Model, len(doc.Models)),
		visiting: make(map[string]bool),
	}
	for _, def := range doc.Models {
		if def.Name == "" {
			return nil, errors.New("modeldef parser: model name is required")
		}
		if _, exists := res.defs[def.Name]; exists {
			return nil, fmt.Errorf("modeldef parser: duplicate model %q", def.Name)
		}
		res.defs[def.Name] = def
	}

	models := make([]*micromodel.Model, 0, len(doc.Models))
	for _, def := range doc.Models {
		model, err := res.resolve(def.Name)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	return models, nil
}

func unmarshal(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return gojson.Unmarshal(trimmed, out)
	}
	return yaml.Unmarshal(raw, out)
}

type resolver struct {
	defs     map[string]modelDef
	built    map[string]*micromodel.Model
	visiting map[string]bool
}

func (r *resolver) resolve(name string) (*micromodel.Model, error) {
	if model, ok := r.built[name]; ok {
		return model, nil
	}
	if r.visiting[name] {
		return nil, fmt.Errorf("modeldef parser: model reference cycle through %q", name)
	}
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("modeldef parser: model %q is not defined", name)
	}

	r.visiting[name] = true
	defer delete(r.visiting, name)

	fields := make([]micromodel.Field, 0, len(def.Fields))
	for _, fd := range def.Fields {
		field, err := r.field(def.Name, fd)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	model, err := micromodel.New(def.Name, fields...)
	if err != nil {
		return nil, fmt.Errorf("modeldef parser: %w", err)
	}
	r.built[name] = model
	return model, nil
}

func (r *resolver) field(modelName string, fd fieldDef) (micromodel.Field, error) {
	if fd.Name == "" {
		return micromodel.Field{}, fmt.Errorf("modeldef parser: model %q has a field with no name", modelName)
	}
	kind, ok := knownKinds[fd.Kind]
	if !ok {
		return micromodel.Field{}, fmt.Errorf("modeldef parser: field %q has unknown kind %q", fd.Name, fd.Kind)
	}

	field := micromodel.Field{
		Name:     fd.Name,
		Kind:     kind,
		Label:    fd.Label,
		Help:     fd.Help,
		Required: fd.Required,
		Default:  fd.Default,
	}

	switch kind {
	case micromodel.KindModel, micromodel.KindModelCollection:
		if fd.Model == "" {
			return micromodel.Field{}, fmt.Errorf("modeldef parser: field %q requires a model reference", fd.Name)
		}
		ref, err := r.resolve(fd.Model)
		if err != nil {
			return micromodel.Field{}, err
		}
		field.Ref = ref
	case micromodel.KindFieldCollection:
		if fd.Elem == nil {
			return micromodel.Field{}, fmt.Errorf("modeldef parser: field %q requires an elem declaration", fd.Name)
		}
		elemDef := *fd.Elem
		if elemDef.Name == "" {
			elemDef.Name = fd.Name
		}
		elem, err := r.field(modelName, elemDef)
		if err != nil {
			return micromodel.Field{}, err
		}
		field.Elem = &elem
	}
	return field, nil
}
