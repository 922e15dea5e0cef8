package forms

import "time"

// Filter transforms a submitted value before validation and binding.
type Filter func(value any) any

// TimeOnly extracts the time-of-day portion from a time.Time, normalizing the
// date to the zero date. Values of any other type pass through unchanged.
func TimeOnly(value any) any {
	t, ok := value.(time.Time)
	if !ok {
		return value
	}
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
