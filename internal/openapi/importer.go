package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/iancoleman/strcase"

	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

// Models converts the component schemas of an OpenAPI document into
// micromodels, one model per object schema, sorted by component name.
// Non-object components are skipped.
func Models(ctx context.Context, raw []byte) ([]*micromodel.Model, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi importer: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi importer: load document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("openapi importer: document has no component schemas")
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	imp := &importer{visiting: make(map[*openapi3.Schema]bool)}

	var models []*micromodel.Model
	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		if schemaType(ref.Value) != "object" && len(ref.Value.Properties) == 0 {
			continue
		}
		model, err := imp.model(name, ref.Value)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	if len(models) == 0 {
		return nil, errors.New("openapi importer: no object schemas found")
	}
	return models, nil
}

type importer struct {
	visiting map[*openapi3.Schema]bool
}

func (imp *importer) model(name string, schema *openapi3.Schema) (*micromodel.Model, error) {
	if imp.visiting[schema] {
		return nil, fmt.Errorf("openapi importer: schema reference cycle through %q", name)
	}
	imp.visiting[schema] = true
	defer delete(imp.visiting, schema)

	requiredSet := make(map[string]struct{}, len(schema.Required))
	for _, item := range schema.Required {
		requiredSet[item] = struct{}{}
	}

	// Property maps carry no declaration order; sort names so imports are
	// deterministic.
	propNames := make([]string, 0, len(schema.Properties))
	for propName := range schema.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	var fields []micromodel.Field
	for _, propName := range propNames {
		propRef := schema.Properties[propName]
		if propRef == nil || propRef.Value == nil {
			continue
		}
		_, required := requiredSet[propName]
		field, ok, err := imp.field(name, propName, propRef.Value, required)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		fields = append(fields, field)
	}

	model, err := micromodel.New(name, fields...)
	if err != nil {
		return nil, fmt.Errorf("openapi importer: %w", err)
	}
	return model, nil
}

func (imp *importer) field(modelName, propName string, schema *openapi3.Schema, required bool) (micromodel.Field, bool, error) {
	field := micromodel.Field{
		Name:     propName,
		Label:    schema.Title,
		Help:     schema.Description,
		Required: required,
		Default:  schema.Default,
	}

	switch schemaType(schema) {
	case "string":
		field.Kind = stringKind(schema.Format)
	case "integer":
		field.Kind = micromodel.KindInteger
	case "number":
		field.Kind = micromodel.KindFloat
	case "boolean":
		if schema.Nullable {
			field.Kind = micromodel.KindNullBoolean
		} else {
			field.Kind = micromodel.KindBoolean
		}
	case "object", "":
		if len(schema.Properties) == 0 {
			return micromodel.Field{}, false, nil
		}
		ref, err := imp.model(nestedModelName(modelName, propName), schema)
		if err != nil {
			return micromodel.Field{}, false, err
		}
		field.Kind = micromodel.KindModel
		field.Ref = ref
	case "array":
		return imp.arrayField(modelName, propName, schema, field)
	default:
		return micromodel.Field{}, false, nil
	}
	return field, true, nil
}

func (imp *importer) arrayField(modelName, propName string, schema *openapi3.Schema, field micromodel.Field) (micromodel.Field, bool, error) {
	if schema.Items == nil || schema.Items.Value == nil {
		return micromodel.Field{}, false, nil
	}
	items := schema.Items.Value

	if schemaType(items) == "object" || len(items.Properties) > 0 {
		ref, err := imp.model(nestedModelName(modelName, propName), items)
		if err != nil {
			return micromodel.Field{}, false, err
		}
		field.Kind = micromodel.KindModelCollection
		field.Ref = ref
		return field, true, nil
	}

	elem, ok, err := imp.field(modelName, propName, items, false)
	if err != nil || !ok {
		return micromodel.Field{}, false, err
	}
	if elem.IsComposite() {
		return micromodel.Field{}, false, nil
	}
	field.Kind = micromodel.KindFieldCollection
	field.Elem = &elem
	return field, true, nil
}

func schemaType(schema *openapi3.Schema) string {
	if schema == nil || schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func stringKind(format string) micromodel.Kind {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "email":
		return micromodel.KindEmail
	case "uri", "iri", "uri-reference", "iri-reference":
		return micromodel.KindURI
	case "url":
		return micromodel.KindURL
	case "ipv4", "ipv6", "ip-address":
		return micromodel.KindIPAddress
	case "date":
		return micromodel.KindDate
	case "time":
		return micromodel.KindTime
	case "date-time", "datetime":
		return micromodel.KindDateTime
	case "byte", "binary":
		return micromodel.KindFile
	case "json":
		return micromodel.KindJSON
	case "xml":
		return micromodel.KindXML
	default:
		return micromodel.KindChar
	}
}

func nestedModelName(modelName, propName string) string {
	return modelName + strcase.ToCamel(propName)
}
