package apperror

import "errors"

type Code string

const (
	CodeNotFound    Code = "not_found"
	CodeValidation  Code = "validation"
	CodeEmptyResult Code = "empty_result"
	CodeInternal    Code = "internal"
)

// Error is an expected business failure. Domain packages declare their
// sentinel errors with New and compare them with errors.Is.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// GetCode returns the code of the first *Error in err's chain, or
// CodeInternal when err carries none.
func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

func IsValidation(err error) bool {
	return GetCode(err) == CodeValidation
}

func IsEmptyResult(err error) bool {
	return GetCode(err) == CodeEmptyResult
}
