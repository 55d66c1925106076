package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors.
type ErrorCode string

const (
	// Timeline errors
	ErrCodeInvalidDate      ErrorCode = "INVALID_DATE"
	ErrCodeInvalidViewMode  ErrorCode = "INVALID_VIEW_MODE"
	ErrCodeInvalidGroupBy   ErrorCode = "INVALID_GROUP_BY"
	ErrCodeInvalidDirection ErrorCode = "INVALID_DIRECTION"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	ErrCodeSnapshotLoading  ErrorCode = "SNAPSHOT_LOADING"

	// Booking detail errors
	ErrCodeBookingNotFound ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeNotBooking      ErrorCode = "NOT_BOOKING_ENTRY"
	ErrCodeInvalidAction   ErrorCode = "INVALID_ACTION"
	ErrCodeNoSelection     ErrorCode = "NO_SELECTION"

	// Database errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound ErrorCode = "DB_NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError carries a code alongside the message so handlers can map errors
// to responses without string matching.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds a new AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError extracts an AppError, or nil when err is not one.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Snapshot errors
	ErrSnapshotNotReady = errors.New("timeline data is still loading")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotBookingEntry = errors.New("entry is not a booking")

	// Selection errors
	ErrNoSelection   = errors.New("no booking selected")
	ErrUnknownAction = errors.New("unknown action")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
