package errs

import (
	"fmt"
)

// Err represents structure of a custom error
type Err struct {
	Code    string
	Message string
	URL     string
	cause   error
}

func (e Err) Error() string {
	return fmt.Sprintf("%s : %s ", e.Code, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e Err) Unwrap() error {
	return e.cause
}

// Is reports whether target is an Err carrying the same code.
func (e Err) Is(target error) bool {
	t, ok := target.(Err)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Error represents a json-encoded API error.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a new error message.
func New(text string) error {
	return &Error{Message: text}
}

var (
	// ErrInvalidLoggerInstance is returned when logger instance is not supported.
	ErrInvalidLoggerInstance = New("Invalid logger instance")
	// ErrInvalidIdentity is returned when neither or both identity shapes are configured.
	ErrInvalidIdentity = New("exactly one of repo token or service name and job id must be provided")
	// ErrUnsupportedFormat is returned for an unknown coverage profile format.
	ErrUnsupportedFormat = New("unsupported profile format")
	// ErrNilReport is returned when a nil report is submitted.
	ErrNilReport = New("report is nil")
)
