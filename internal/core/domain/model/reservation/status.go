package reservation

import (
	"errors"
	"fmt"

	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a reservation decision is
// applied outside the Pending state. It marks a state conflict rather
// than malformed input.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a reservation:
//
//	Pending ──> Confirmed
//	Pending ──> Cancelled
//
// Both outcomes are terminal. Confirming or cancelling twice, or
// flipping between the two, is rejected.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Pending is the initial status of a submitted reservation request.
	Pending

	// Confirmed means the restaurant accepted the request. Terminal.
	Confirmed

	// Cancelled means the request was declined or withdrawn. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pending",
		Confirmed:     "confirmed",
		Cancelled:     "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the status is one of the three known states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Confirm transitions the status to Confirmed. Only valid from Pending.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: %s is not a valid status to confirm", ErrInvalidStatusTransition, s.String())
	}

	return Confirmed, nil
}

// Cancel transitions the status to Cancelled. Only valid from Pending.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: %s is not a valid status to cancel", ErrInvalidStatusTransition, s.String())
	}

	return Cancelled, nil
}
