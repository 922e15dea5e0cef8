package forms

import (
	"fmt"
	"strconv"
)

// NullBoolChoices returns the enumerated options for a tri-state boolean
// select: unknown, yes, no.
func NullBoolChoices() []Choice {
	return []Choice{
		{Value: nil, Label: "Unknown"},
		{Value: true, Label: "Yes"},
		{Value: false, Label: "No"},
	}
}

// NullBoolCoerce maps submitted input onto a tri-state boolean. The literals
// "None" and nil coerce to nil, "True"/"False" to the matching bool, and any
// other string to the truthiness of its integer value.
func NullBoolCoerce(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch v {
		case "None":
			return nil, nil
		case "True":
			return true, nil
		case "False":
			return false, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("forms: cannot coerce %q to a tri-state boolean: %w", v, err)
		}
		return n != 0, nil
	case int:
		return v != 0, nil
	default:
		return nil, fmt.Errorf("forms: cannot coerce %T to a tri-state boolean", value)
	}
}
