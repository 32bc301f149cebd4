package forecast

import "fmt"

// ValidationError reports malformed or out-of-range caller input. The
// caller can recover by fixing the request.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProviderError covers upstream transport failures, timeouts and
// structurally unusable upstream payloads. Callers never see raw
// transport errors.
type ProviderError struct {
	Message string
	Err     error
}

func NewProviderError(message string, err error) *ProviderError {
	return &ProviderError{Message: message, Err: err}
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ProcessingError reports that the transformation pipeline produced no
// usable result or wrapped an unexpected internal error.
type ProcessingError struct {
	Message string
	Err     error
}

func NewProcessingError(message string, err error) *ProcessingError {
	return &ProcessingError{Message: message, Err: err}
}

func (e *ProcessingError) Error() string {
	return e.Message
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
