// Package errors provides the error taxonomy of the expense tracker API.
// Every service-layer failure is an *AppError carrying a Kind; the HTTP
// status is taken from a fixed Kind table, never from the error's type.
// Internal details stay in Internal and are never serialised.
package errors

import "net/http"

// Kind classifies an AppError.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
)

var statusByKind = map[Kind]int{
	KindInternal:     http.StatusInternalServerError,
	KindValidation:   http.StatusBadRequest,
	KindConflict:     http.StatusBadRequest,
	KindNotFound:     http.StatusNotFound,
	KindUnauthorized: http.StatusUnauthorized,
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	if status, ok := statusByKind[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// AppError represents a structured application error with a machine-readable
// code, a human-readable message, optional field-level messages and an
// optional internal cause.
type AppError struct {
	Kind     Kind              `json:"-"`
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Fields   map[string]string `json:"fields,omitempty"`
	Internal error             `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches any AppError with the same code, so derived errors created by
// Wrap or WithMessage still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// StatusCode returns the HTTP status for the error's kind.
func (e *AppError) StatusCode() int { return e.Kind.Status() }

// Response is the JSON envelope written for every error response.
type Response struct {
	Error *AppError `json:"error"`
}

// Wrap creates a copy of sentinel that wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Kind:     sentinel.Kind,
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Internal: internal,
	}
}

// WithMessage creates a copy of sentinel with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Kind:     sentinel.Kind,
		Code:     sentinel.Code,
		Message:  message,
		Fields:   sentinel.Fields,
		Internal: sentinel.Internal,
	}
}

// WithFields creates a copy of sentinel carrying field-level messages.
func WithFields(sentinel *AppError, fields map[string]string) *AppError {
	return &AppError{
		Kind:     sentinel.Kind,
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Fields:   fields,
		Internal: sentinel.Internal,
	}
}

// InvalidField returns a validation error for a single field.
func InvalidField(field, message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    ErrInvalidInput.Code,
		Message: message,
		Fields:  map[string]string{field: message},
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Kind: KindUnauthorized, Code: "UNAUTHORIZED", Message: "Authentication required"}
	ErrInvalidCredentials = &AppError{Kind: KindUnauthorized, Code: "INVALID_CREDENTIALS", Message: "Invalid username or password"}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Kind: KindValidation, Code: "INVALID_INPUT", Message: "Validation failed"}
	ErrNotFound       = &AppError{Kind: KindNotFound, Code: "NOT_FOUND", Message: "Resource not found"}
	ErrInternalServer = &AppError{Kind: KindInternal, Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Kind: KindNotFound, Code: "USER_NOT_FOUND", Message: "User not found"}
	ErrDuplicateUsername = &AppError{Kind: KindConflict, Code: "DUPLICATE_USERNAME", Message: "Username is already taken"}
	ErrDuplicateEmail    = &AppError{Kind: KindConflict, Code: "DUPLICATE_EMAIL", Message: "Email is already in use"}
)

// Category errors.
var (
	ErrCategoryNotFound  = &AppError{Kind: KindNotFound, Code: "CATEGORY_NOT_FOUND", Message: "Category not found"}
	ErrDuplicateCategory = &AppError{Kind: KindConflict, Code: "DUPLICATE_CATEGORY", Message: "Category with this name already exists"}
	ErrCategoryInUse     = &AppError{Kind: KindConflict, Code: "CATEGORY_IN_USE", Message: "Category is used by existing expenses"}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Kind: KindNotFound, Code: "EXPENSE_NOT_FOUND", Message: "Expense not found"}
)
