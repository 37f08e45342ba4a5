package llm

// TimeoutError indicates a generation request exceeded its deadline.
type TimeoutError struct {
	Message string
	Cause   error
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// UpstreamError indicates the provider rejected or failed the request.
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
