package micromodel

// Option configures a field declaration.
type Option func(*Field)

// Required marks the field as mandatory. Fields default to optional.
func Required() Option {
	return func(f *Field) {
		f.Required = true
	}
}

// Default sets the field's default value.
func Default(value any) Option {
	return func(f *Field) {
		f.Default = value
	}
}

// Label overrides the human-readable label derived from the field name.
func Label(label string) Option {
	return func(f *Field) {
		f.Label = label
	}
}

// Help attaches help text to the field.
func Help(text string) Option {
	return func(f *Field) {
		f.Help = text
	}
}

func newField(name string, kind Kind, opts []Option) Field {
	field := Field{Name: name, Kind: kind}
	for _, opt := range opts {
		opt(&field)
	}
	return field
}

// Char declares a single-line text field.
func Char(name string, opts ...Option) Field { return newField(name, KindChar, opts) }

// Text declares a multi-line text field.
func Text(name string, opts ...Option) Field { return newField(name, KindText, opts) }

// Slug declares a URL-slug text field.
func Slug(name string, opts ...Option) Field { return newField(name, KindSlug, opts) }

// Phone declares a phone number field.
func Phone(name string, opts ...Option) Field { return newField(name, KindPhone, opts) }

// Email declares an email address field.
func Email(name string, opts ...Option) Field { return newField(name, KindEmail, opts) }

// URL declares a URL field validated as text input.
func URL(name string, opts ...Option) Field { return newField(name, KindURL, opts) }

// URI declares a URI reference field.
func URI(name string, opts ...Option) Field { return newField(name, KindURI, opts) }

// URIFile declares a URI-addressed file field.
func URIFile(name string, opts ...Option) Field { return newField(name, KindURIFile, opts) }

// IPAddress declares an IP address field.
func IPAddress(name string, opts ...Option) Field { return newField(name, KindIPAddress, opts) }

// Auto declares an auto-incrementing integer field.
func Auto(name string, opts ...Option) Field { return newField(name, KindAuto, opts) }

// Integer declares an integer field.
func Integer(name string, opts ...Option) Field { return newField(name, KindInteger, opts) }

// SmallInteger declares a small integer field.
func SmallInteger(name string, opts ...Option) Field { return newField(name, KindSmallInteger, opts) }

// PositiveInteger declares a non-negative integer field.
func PositiveInteger(name string, opts ...Option) Field {
	return newField(name, KindPositiveInteger, opts)
}

// PositiveSmallInteger declares a non-negative small integer field.
func PositiveSmallInteger(name string, opts ...Option) Field {
	return newField(name, KindPositiveSmallInteger, opts)
}

// Decimal declares a fixed-precision decimal field.
func Decimal(name string, opts ...Option) Field { return newField(name, KindDecimal, opts) }

// Float declares a floating point field.
func Float(name string, opts ...Option) Field { return newField(name, KindFloat, opts) }

// Boolean declares a true/false field.
func Boolean(name string, opts ...Option) Field { return newField(name, KindBoolean, opts) }

// NullBoolean declares a tri-state boolean field (unknown, yes, no).
func NullBoolean(name string, opts ...Option) Field { return newField(name, KindNullBoolean, opts) }

// Date declares a calendar date field.
func Date(name string, opts ...Option) Field { return newField(name, KindDate, opts) }

// Time declares a time-of-day field.
func Time(name string, opts ...Option) Field { return newField(name, KindTime, opts) }

// DateTime declares a combined date and time field.
func DateTime(name string, opts ...Option) Field { return newField(name, KindDateTime, opts) }

// File declares a file upload field.
func File(name string, opts ...Option) Field { return newField(name, KindFile, opts) }

// FilePath declares a server-side file path field.
func FilePath(name string, opts ...Option) Field { return newField(name, KindFilePath, opts) }

// Image declares an image upload field.
func Image(name string, opts ...Option) Field { return newField(name, KindImage, opts) }

// XML declares an XML document field.
func XML(name string, opts ...Option) Field { return newField(name, KindXML, opts) }

// JSON declares a JSON document field.
func JSON(name string, opts ...Option) Field { return newField(name, KindJSON, opts) }

// ModelField declares a nested single sub-model field.
func ModelField(name string, ref *Model, opts ...Option) Field {
	field := newField(name, KindModel, opts)
	field.Ref = ref
	return field
}

// ModelCollection declares a repeatable collection of sub-models.
func ModelCollection(name string, ref *Model, opts ...Option) Field {
	field := newField(name, KindModelCollection, opts)
	field.Ref = ref
	return field
}

// FieldCollection declares a repeatable collection of a single scalar field.
// The element's own name is ignored; only its kind and metadata matter.
func FieldCollection(name string, elem Field, opts ...Option) Field {
	field := newField(name, KindFieldCollection, opts)
	field.Elem = &elem
	return field
}
