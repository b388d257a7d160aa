package validator

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Merge appends the field errors carried by err to errs. An error that
// holds no field errors is returned as is.
func Merge(errs ValidationErrors, err error) (ValidationErrors, error) {
	if err == nil {
		return errs, nil
	}
	var fieldErrs ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs, err
	}
	return append(errs, fieldErrs...), nil
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ExceedsLength reports whether s is longer than max characters.
func ExceedsLength(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// Required appends a "<field> is required" error when value is blank and a
// length error when it is longer than max.
func Required(errs ValidationErrors, field, value string, max int) ValidationErrors {
	if IsEmpty(value) {
		return append(errs, ValidationError{
			Field:   field,
			Message: field + " is required",
		})
	}
	if max > 0 && ExceedsLength(value, max) {
		return append(errs, ValidationError{
			Field:   field,
			Message: field + " must not exceed " + strconv.Itoa(max) + " characters",
		})
	}
	return errs
}

// Positive appends an error when id is not a positive integer.
func Positive(errs ValidationErrors, field string, id int) ValidationErrors {
	if id <= 0 {
		return append(errs, ValidationError{
			Field:   field,
			Message: field + " must be a positive integer",
		})
	}
	return errs
}
