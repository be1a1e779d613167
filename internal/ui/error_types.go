package ui

import (
	"fmt"
	"strings"
)

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	// ErrorCategoryIO represents file I/O errors
	ErrorCategoryIO ErrorCategory = "io"
	// ErrorCategoryParsing represents parsing errors
	ErrorCategoryParsing ErrorCategory = "parsing"
	// ErrorCategoryOperation represents operation errors
	ErrorCategoryOperation ErrorCategory = "operation"
	// ErrorCategoryValidation represents user input validation errors
	ErrorCategoryValidation ErrorCategory = "validation"
)

// AppError is an error shown to the user in the notice area
type AppError struct {
	Category      ErrorCategory
	Title         string
	Message       string
	RecoveryHints []string
	Underlying    error
}

// NewAppError creates a new app error
func NewAppError(category ErrorCategory, title, message string, underlying error) *AppError {
	return &AppError{
		Category:   category,
		Title:      title,
		Message:    message,
		Underlying: underlying,
	}
}

// NewIOError creates a file access error
func NewIOError(title, message string, underlying error) *AppError {
	err := NewAppError(ErrorCategoryIO, title, message, underlying)
	err.RecoveryHints = []string{"Check file permissions", "Verify the file path is correct"}
	return err
}

// NewParsingError creates a config or seed parsing error
func NewParsingError(title, message string, underlying error) *AppError {
	err := NewAppError(ErrorCategoryParsing, title, message, underlying)
	err.RecoveryHints = []string{"Fix the file contents; the previous settings stay active"}
	return err
}

// NewValidationError creates a form input error
func NewValidationError(title, message string) *AppError {
	err := NewAppError(ErrorCategoryValidation, title, message, nil)
	err.RecoveryHints = []string{"Review your input and try again"}
	return err
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Title, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Underlying
}

// DisplayMessage returns the one-line text for the notice area
func (e *AppError) DisplayMessage() string {
	msg := fmt.Sprintf("%s: %s", e.Title, e.Message)
	if len(e.RecoveryHints) > 0 {
		msg += " (" + strings.Join(e.RecoveryHints, "; ") + ")"
	}
	return msg
}
