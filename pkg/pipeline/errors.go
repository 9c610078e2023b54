package pipeline

// ValidationError is returned when a run request misses required fields.
// Nothing is written when it is returned.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
