// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Store errors.
	ErrNotFound   = errors.New("transaction not found")
	ErrValidation = errors.New("invalid transaction")

	// Import errors.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtraction        = errors.New("file is empty or unreadable")
	ErrEmptyResult       = errors.New("no valid rows found")

	// Backup errors.
	ErrRestorePayload = errors.New("invalid backup payload")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
