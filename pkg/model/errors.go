package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var ErrEmptyRoster = errors.New("there are no present students to arrange")

// FieldError is used to indicate an error with a specific document field
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func newValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &ValidationError{Err: err}
	}

	fields := lo.Map(validationErrors, func(fieldError validator.FieldError, _ int) FieldError {
		message := fieldError.Tag()
		if fieldError.Param() != "" {
			message = fmt.Sprintf("%v=%v", fieldError.Tag(), fieldError.Param())
		}
		return FieldError{Field: fieldError.Namespace(), Error: message}
	})
	return &ValidationError{Err: err, Fields: fields}
}

func (err *ValidationError) Error() string {
	if len(err.Fields) == 0 {
		return fmt.Sprintf("invalid input: %v", err.Err)
	}

	descriptions := lo.Map(err.Fields, func(field FieldError, _ int) string {
		return fmt.Sprintf("%v (%v)", field.Field, field.Error)
	})
	return fmt.Sprintf("invalid input: %v", strings.Join(descriptions, ", "))
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}
