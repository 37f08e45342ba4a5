package pipeline

// ExtractionError indicates the resume yielded no usable text. Terminal for
// the run and not retried automatically.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// RunError wraps any failure that moved a candidate to the error status.
type RunError struct {
	Step    string
	Message string
	Cause   error
}

func (e *RunError) Error() string {
	if e.Cause != nil {
		return e.Step + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Step + ": " + e.Message
}

func (e *RunError) Unwrap() error {
	return e.Cause
}
