package micromodel

// Kind identifies the declared type of a model field. Kinds are a closed set
// of string tags so converter registries can dispatch without reflection or
// runtime name lookup.
type Kind string

const (
	KindChar                 Kind = "char"
	KindText                 Kind = "text"
	KindSlug                 Kind = "slug"
	KindPhone                Kind = "phone"
	KindEmail                Kind = "email"
	KindURL                  Kind = "url"
	KindURI                  Kind = "uri"
	KindURIFile              Kind = "uri-file"
	KindIPAddress            Kind = "ip-address"
	KindAuto                 Kind = "auto"
	KindInteger              Kind = "integer"
	KindSmallInteger         Kind = "small-integer"
	KindPositiveInteger      Kind = "positive-integer"
	KindPositiveSmallInteger Kind = "positive-small-integer"
	KindDecimal              Kind = "decimal"
	KindFloat                Kind = "float"
	KindBoolean              Kind = "boolean"
	KindNullBoolean          Kind = "null-boolean"
	KindDate                 Kind = "date"
	KindTime                 Kind = "time"
	KindDateTime             Kind = "datetime"
	KindFile                 Kind = "file"
	KindFilePath             Kind = "file-path"
	KindImage                Kind = "image"
	KindXML                  Kind = "xml"
	KindJSON                 Kind = "json"
	KindModel                Kind = "model"
	KindModelCollection      Kind = "model-collection"
	KindFieldCollection      Kind = "field-collection"
)

// Field describes a single declared field on a micromodel. Composite kinds
// carry their payload in Ref (Model, ModelCollection) or Elem
// (FieldCollection); both are nil for scalar kinds.
type Field struct {
	Name     string
	Kind     Kind
	Label    string
	Help     string
	Required bool
	Default  any
	Ref      *Model
	Elem     *Field
}

// IsComposite reports whether the field nests another model or field.
func (f Field) IsComposite() bool {
	switch f.Kind {
	case KindModel, KindModelCollection, KindFieldCollection:
		return true
	}
	return false
}
