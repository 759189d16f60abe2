// Package errors provides custom error types for the Captable API.
// All service-layer and modeling errors use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target carries the same error code, so that
// WithMessage/Wrap derivatives still match their sentinel under errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Scenario modeling errors. These are the typed failures of the computation
// core: each calculator validates its inputs before computing and fails
// atomically, never returning a partially populated result.
var (
	ErrInvalidScenarioInput    = &AppError{Code: "INVALID_SCENARIO_INPUT", Message: "Invalid scenario input", StatusCode: http.StatusBadRequest}
	ErrUnsupportedScenarioType = &AppError{Code: "UNSUPPORTED_SCENARIO_TYPE", Message: "Unsupported scenario type", StatusCode: http.StatusBadRequest}
	ErrEmptyInputSet           = &AppError{Code: "EMPTY_INPUT_SET", Message: "No records available for this computation", StatusCode: http.StatusUnprocessableEntity}
)

// Company errors.
var (
	ErrCompanyNotFound = &AppError{Code: "COMPANY_NOT_FOUND", Message: "Company profile not found", StatusCode: http.StatusNotFound}
)

// Shareholder errors.
var (
	ErrShareholderNotFound = &AppError{Code: "SHAREHOLDER_NOT_FOUND", Message: "Shareholder not found", StatusCode: http.StatusNotFound}
	ErrShareholderInUse    = &AppError{Code: "SHAREHOLDER_IN_USE", Message: "Shareholder has holdings or SAFE notes", StatusCode: http.StatusConflict}
)

// Holding errors.
var (
	ErrHoldingNotFound = &AppError{Code: "HOLDING_NOT_FOUND", Message: "Holding not found", StatusCode: http.StatusNotFound}
)

// SAFE note errors.
var (
	ErrSafeNoteNotFound   = &AppError{Code: "SAFE_NOTE_NOT_FOUND", Message: "SAFE note not found", StatusCode: http.StatusNotFound}
	ErrSafeNotOutstanding = &AppError{Code: "SAFE_NOT_OUTSTANDING", Message: "SAFE note is no longer outstanding", StatusCode: http.StatusConflict}
)

// Scenario errors.
var (
	ErrScenarioNotFound = &AppError{Code: "SCENARIO_NOT_FOUND", Message: "Scenario not found", StatusCode: http.StatusNotFound}
)
