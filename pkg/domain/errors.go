package domain

import (
	"errors"
	"fmt"
)

type notFoundError struct {
	Word string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("word %q not found in the forbidden word list", e.Word)
}

func NewWordNotFoundError(word string) error {
	return &notFoundError{Word: word}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	return errors.As(err, &notFoundError)
}

type validationError struct {
	Field  string
	Reason string
}

func (e *validationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &validationError{Field: field, Reason: reason}
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var validationError *validationError
	return errors.As(err, &validationError)
}
