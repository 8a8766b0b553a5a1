package services

import (
	"errors"
	"fmt"

	"github.com/fitstudio/backend/models"
)

var (
	// ErrSeatCancelled is returned when an operation targets a seat whose
	// is_valid flag has already been cleared.
	ErrSeatCancelled = errors.New("seat has been cancelled")

	// ErrSeatConflict is returned when the version check fails because a
	// concurrent call committed first. Callers should re-read and retry.
	ErrSeatConflict = errors.New("seat was modified concurrently")

	// ErrGroupClosed is returned when joining a group that is no longer open.
	ErrGroupClosed = errors.New("group is no longer open")
)

// InvalidTransitionError reports a (from, to) pair that is not in the
// seat transition table. The attempted operation commits nothing.
type InvalidTransitionError struct {
	From models.SeatStatus
	To   models.SeatStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("unknown transform: %s -> %s", e.From, e.To)
}
