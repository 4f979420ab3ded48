package filtering

import (
	"fmt"
	"strings"
)

// ValidationError represents a pattern validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// whitespace lists the bytes that delimit tokens on the command line input.
const whitespace = " \t\n\v\f\r"

func isSpace(ch byte) bool {
	return strings.IndexByte(whitespace, ch) >= 0
}

// ParseWildcard converts a wildcard flag value into the wildcard byte.
// The wildcard must be exactly one non-whitespace byte.
func ParseWildcard(value string) (byte, error) {
	if len(value) != 1 {
		return 0, &ValidationError{
			Field:   "wildcard",
			Message: fmt.Sprintf("must be a single byte, got %q", value),
		}
	}
	if isSpace(value[0]) {
		return 0, &ValidationError{
			Field:   "wildcard",
			Message: "cannot be whitespace",
		}
	}
	return value[0], nil
}

// ValidatePattern checks that a pattern can be read back from
// whitespace-delimited input. Patterns may consist of wildcards only.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return &ValidationError{
			Field:   "pattern",
			Message: "pattern cannot be empty",
		}
	}
	if strings.ContainsAny(pattern, whitespace) {
		return &ValidationError{
			Field:   "pattern",
			Message: "pattern cannot contain whitespace",
		}
	}
	return nil
}
