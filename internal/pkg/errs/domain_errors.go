package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Slot errors
	ErrSlotNotFound    = errors.New("slot not found")
	ErrSlotConflict    = errors.New("slot overlaps an existing slot")
	ErrSlotNotEditable = errors.New("slot is not editable")
	ErrSlotUnavailable = errors.New("slot is not available for booking")
	ErrInvalidRange    = errors.New("invalid time range")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingNotPending = errors.New("booking is not pending")
	ErrInvalidTransition = errors.New("illegal booking transition")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Authorization errors
	ErrNotAuthorized = errors.New("not authorized")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
