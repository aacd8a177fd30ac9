package booking

import (
	"errors"
	"fmt"
)

// Booking failure codes. Handlers map these onto HTTP statuses; the
// assistant maps them onto chat replies.
const (
	CodeAuthRequired      = "authRequired"
	CodeEquipmentNotFound = "equipmentNotFound"
	CodeInvalidRate       = "invalidRate"
	CodeInvalidDuration   = "invalidDuration"
	CodePersistenceError  = "persistenceError"
)

// Error is a coded booking failure with a user-presentable message.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code, message string) error {
	return &Error{Code: code, Message: message}
}

func wrapError(code, message string, err error) error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the booking failure code carried by err, or an empty
// string for non-booking errors.
func CodeOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// MessageOf returns the user-presentable message carried by err, falling
// back to a generic one for non-booking errors.
func MessageOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Message
	}
	return "An error occurred during booking. Please try again."
}
