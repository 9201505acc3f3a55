package errors

import (
	"errors"
)

var (
	// ErrOptionResolution marks every failure raised while resolving application command options
	ErrOptionResolution = errors.New("application command option resolution failed")

	// ErrModalFieldResolution marks every failure raised while resolving modal submission fields
	ErrModalFieldResolution = errors.New("modal field resolution failed")

	// ErrNotFound indicates that a requested option, field, subcommand or group is absent
	ErrNotFound = errors.New("not found")

	// ErrTypeMismatch indicates that an option or field exists but has a different type than requested
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidQuery indicates that a lookup query can never be satisfied
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidValue indicates that a value is missing or cannot be decoded as the requested type
	ErrInvalidValue = errors.New("invalid value")
)

// Error codes carried by Error
const (
	CodeUnknown               = "UNKNOWN_ERROR"
	CodeRequiredOptionMissing = "REQUIRED_OPTION_MISSING"
	CodeOptionTypeMismatch    = "OPTION_TYPE_MISMATCH"
	CodeFocusedOptionMissing  = "FOCUSED_OPTION_MISSING"
	CodeSubcommandMissing     = "SUBCOMMAND_MISSING"
	CodeGroupMissing          = "GROUP_MISSING"
	CodeInvalidOptionQuery    = "INVALID_OPTION_QUERY"
	CodeInvalidOptionValue    = "INVALID_OPTION_VALUE"
	CodeRequiredFieldMissing  = "REQUIRED_FIELD_MISSING"
	CodeFieldNotFound         = "FIELD_NOT_FOUND"
	CodeFieldTypeMismatch     = "FIELD_TYPE_MISMATCH"
	CodeInvalidFieldQuery     = "INVALID_FIELD_QUERY"
	CodeInvalidFieldValue     = "INVALID_FIELD_VALUE"
)

// Error represents a structured resolution error
type Error struct {
	// Code is a machine-readable error code
	Code string

	// Message is the human-readable error message
	Message string

	// Err is the cause sentinel, if any
	Err error

	category error
}

// Error implements the error interface. Only the message is rendered so that
// callers can surface it to end users verbatim.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes both the resolution category and the cause
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.category != nil {
		errs = append(errs, e.category)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewOptionError creates an application command option resolution error
func NewOptionError(code, message string, err error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Err:      err,
		category: ErrOptionResolution,
	}
}

// NewModalFieldError creates a modal field resolution error
func NewModalFieldError(code, message string, err error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Err:      err,
		category: ErrModalFieldResolution,
	}
}

// Code returns the code of the first *Error in err's chain
func Code(err error) string {
	if err == nil {
		return ""
	}
	var resErr *Error
	if errors.As(err, &resErr) {
		return resErr.Code
	}
	return CodeUnknown
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTypeMismatch checks if an error is a type mismatch error
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}
