package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific form field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError reports one or more invalid form fields. It stays local
// to the submitting screen and never reaches the network layer.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) *ValidationError {
	return &ValidationError{err, flds}
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// FieldMap returns the field errors keyed by field name, the shape the
// screens render inline.
func (err *ValidationError) FieldMap() map[string]string {
	flds := make(map[string]string, len(err.Fields))
	for _, fErr := range err.Fields {
		flds[fErr.Field] = fErr.Error
	}
	return flds
}

// ErrorKind tags an Error so callers can tell failure classes apart
// without matching on message strings.
type ErrorKind int

const (
	// KindTransport: the request failed before reaching the backend.
	KindTransport ErrorKind = iota + 1
	// KindBackend: the backend answered with a non-2xx response.
	KindBackend
	// KindPersistence: a device storage read or write failed.
	KindPersistence
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindBackend:
		return "backend"
	case KindPersistence:
		return "persistence"
	}
	return "unknown"
}

// Error is a tagged application error. Its message is safe to surface to
// the user as is.
type Error struct {
	kind  ErrorKind
	msg   string
	cause error
}

func NewTransportError(msg string, cause error) error {
	return &Error{kind: KindTransport, msg: msg, cause: cause}
}

func NewBackendError(msg string, cause ...error) error {
	err := &Error{kind: KindBackend, msg: msg}
	if len(cause) > 0 {
		err.cause = cause[0]
	}
	return err
}

func NewPersistenceError(msg string, cause error) error {
	return &Error{kind: KindPersistence, msg: msg, cause: cause}
}

func (e *Error) Error() string   { return e.msg }
func (e *Error) Kind() ErrorKind { return e.kind }
func (e *Error) Unwrap() error   { return e.cause }

// IsKind reports whether err (or any error it wraps) is an Error of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind == kind
	}
	return false
}
