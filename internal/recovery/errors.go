package recovery

import "fmt"

// ParseError represents a failure to recover any JSON value from the input.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("json recovery failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("json recovery failed: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
