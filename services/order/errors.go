package order

import "fmt"

// ValidationError signals a malformed or missing field on an order
// submission. Raised before any store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
