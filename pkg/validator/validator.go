package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ParseError flattens a binding error into a per-field message map.
func ParseError(err error) map[string]string {
	errors := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			errors[fe.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
	} else if err != nil {
		errors["error"] = err.Error()
	}
	return errors
}

// ErrorMessage renders a parsed error map as a single user-facing string.
func ErrorMessage(err error) string {
	parsed := ParseError(err)
	parts := make([]string, 0, len(parsed))
	for _, msg := range parsed {
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}
