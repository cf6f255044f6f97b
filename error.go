package readable

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL    = "internal"    // unexpected pipeline failure
	EINVALID     = "invalid"     // validation failed on caller input
	ENOCONTENT   = "nocontent"   // pipeline ran but isolated no content
	ENOTFOUND    = "notfound"    // entity does not exist
	EUNAVAILABLE = "unavailable" // upstream fetch failed
)

// Error represents an application error with a machine-readable code
// and a human-readable message. Codes map to transport status codes at
// the edge; messages are safe to show to callers.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("readable error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper for constructing an *Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors report EINTERNAL; nil reports an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors report a generic message to avoid leaking
// internal detail; nil reports an empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
