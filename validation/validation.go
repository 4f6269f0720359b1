package validation

import (
	"strconv"
	"strings"
)

// Violations maps a form field name to a translation code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// RequiredID flags an unselected reference (zero or negative id).
func RequiredID(field string, id int64, v Violations) {
	if id <= 0 {
		v[field] = "required"
	}
}

// ParseID coerces a select/number input into an id; blanks and garbage
// yield 0 so RequiredID reports them.
func ParseID(value string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseAmount coerces a number input into a float, accepting a comma as
// the decimal separator. Blanks yield 0.
func ParseAmount(value string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
