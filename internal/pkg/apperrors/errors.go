package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Complaint errors
var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrInvalidStatus     = errors.New("invalid complaint status")
	ErrInvalidPriority   = errors.New("invalid complaint priority")

	// ErrNotificationWrite marks a failure writing the notification row that
	// accompanies a complaint insert. The surrounding transaction rolls back
	// as a whole; the sentinel only names which write failed.
	ErrNotificationWrite = errors.New("failed to write notification")
)

// Helpdesk errors
var (
	ErrTicketNotFound = errors.New("ticket not found")
)

// Poll errors
var (
	ErrPollNotFound       = errors.New("poll not found")
	ErrPollOptionNotFound = errors.New("poll option not found")
	ErrPollClosed         = errors.New("poll is closed")
	ErrAlreadyVoted       = errors.New("user has already voted in this poll")
)

// Campus content errors
var (
	ErrNoticeNotFound       = errors.New("notice not found")
	ErrClubNotFound         = errors.New("club not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrPlacementNotFound    = errors.New("placement not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAlreadyMember        = errors.New("user is already a member of this club")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error carrying the specific reason
// so the caller can correct its input.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}
