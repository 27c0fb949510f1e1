package library

import (
	"errors"
	"fmt"
)

// Engine-level failures surfaced to callers. None of these are fatal; the
// caller decides whether to retry.
var (
	ErrItemNotFound        = errors.New("item not found")
	ErrItemUnavailable     = errors.New("item not available")
	ErrUserNotFound        = errors.New("user not found")
	ErrNoActiveTransaction = errors.New("no active transaction found")
	ErrUnauthorized        = errors.New("unauthorized: admin access required")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateID         = errors.New("id already exists")
	ErrInvalidUser         = errors.New("invalid user details")
)

// BorrowLimitError is returned when a user already has the maximum number of
// active borrows for their role. The message carries the numeric limit.
type BorrowLimitError struct {
	Limit int
}

func (e *BorrowLimitError) Error() string {
	return fmt.Sprintf("you have reached your borrowing limit of %d items", e.Limit)
}

// Failure is the structured error payload handed to presentation layers.
type Failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// AsFailure converts an engine error into its structured form.
func AsFailure(err error) Failure {
	return Failure{Success: false, Message: err.Error(), Kind: Kind(err)}
}

// Kind maps an engine error to a stable identifier.
func Kind(err error) string {
	var limitErr *BorrowLimitError
	switch {
	case errors.Is(err, ErrItemNotFound):
		return "ItemNotFound"
	case errors.Is(err, ErrItemUnavailable):
		return "ItemUnavailable"
	case errors.As(err, &limitErr):
		return "BorrowLimitExceeded"
	case errors.Is(err, ErrNoActiveTransaction):
		return "NoActiveTransaction"
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, ErrUserNotFound):
		return "UserNotFound"
	case errors.Is(err, ErrInvalidCredentials):
		return "InvalidCredentials"
	case errors.Is(err, ErrDuplicateID):
		return "DuplicateID"
	case errors.Is(err, ErrInvalidUser):
		return "InvalidUser"
	default:
		return "Internal"
	}
}
