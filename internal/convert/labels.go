package convert

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// DefaultLabeler converts a field name into a human-friendly label: camelCase
// and snake_case boundaries become spaces, with the first word capitalized.
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}
	words := strcase.ToDelimited(name, ' ')
	words = strings.TrimSpace(words)
	if words == "" {
		return ""
	}
	return strings.ToUpper(words[:1]) + words[1:]
}

// PluralizeLabel pluralizes the final word of a derived label so collection
// fields read naturally ("Image" -> "Images"). Explicit labels are never
// pluralized.
func PluralizeLabel(label string) string {
	if label == "" {
		return ""
	}
	parts := strings.Split(label, " ")
	parts[len(parts)-1] = inflection.Plural(parts[len(parts)-1])
	return strings.Join(parts, " ")
}
