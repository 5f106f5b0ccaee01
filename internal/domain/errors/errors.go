// Package errors defines the application-level error hierarchy: typed
// errors carrying both an HTTP status and a stable business code, so the
// delivery layer can render them without inspecting error strings.
package errors

import (
	"net/http"

	"memoria/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// NewValidationError builds a 400 error whose message is the first failing
// validation reason. The reason strings are part of the API contract and
// must be surfaced verbatim.
func NewValidationError(reason string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		reason,
		"",
	)
}

// NewDatabaseExecuteError wraps a low-level persistence failure as a
// generic 500 while keeping the cause attached for logging.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		"",
	), err.Error())
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"User already exists",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		"EMAIL_NOT_VERIFIED",
		"Please verify your email first",
		"",
	)

	ErrVerificationTokenInvalid = NewBaseError(
		http.StatusNotFound,
		"VERIFICATION_TOKEN_INVALID",
		"Invalid or expired verification token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Journal-related errors
	ErrJournalNotFound = NewBaseError(
		http.StatusNotFound,
		"JOURNAL_NOT_FOUND",
		"Journal not found",
		"",
	)

	ErrInvalidContentType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONTENT_TYPE",
		"Invalid content type",
		"",
	)

	ErrInvalidFileType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILE_TYPE",
		"Invalid file type",
		"",
	)

	ErrAssetUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"ASSET_UPLOAD_FAILED",
		"Failed to upload media asset",
		"",
	)

	ErrMailSendFailed = NewBaseError(
		http.StatusInternalServerError,
		"MAIL_SEND_FAILED",
		"Failed to send verification email",
		"",
	)
)
