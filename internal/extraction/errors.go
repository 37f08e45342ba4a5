package extraction

// UnsupportedFormatError indicates a resume file extension with no registered
// extractor.
type UnsupportedFormatError struct {
	Message string
}

func (e *UnsupportedFormatError) Error() string {
	return e.Message
}

// ReadError indicates the resume file could not be read or decoded.
type ReadError struct {
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
