package services

import "strings"

// ValidationError carries every rule violation found in a payload, in the
// order the rules were evaluated.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
