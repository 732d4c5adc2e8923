package model

import "fmt"

// ValidationError represents invalid caller input to a model operation,
// such as an unrecognized header placement type or undecodable image data.
// It is a programming error in caller usage, never a transient condition,
// and the operation that raises it leaves the model untouched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
	}
}
