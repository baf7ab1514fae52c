package order

import (
	"errors"
	"fmt"

	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a lifecycle action is
// applied to an order that is not in the expected source state.
// It marks a state conflict rather than malformed input.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order. It implements a
// state machine with a single forward path and no cycles:
//
//	Pending ──> Preparing ──> Delivering ──> Completed
//
// Every transition rejects any source state other than its direct
// predecessor, so replaying an action or skipping a step is an error
// and leaves the order untouched.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status of a freshly checked-out order,
	// waiting for the kitchen to pick it up.
	Pending

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Delivering indicates a driver has taken the order on the road.
	// Entering this status requires a driver assignment.
	Delivering

	// Completed indicates the order has been delivered.
	// This is a final state with no further transitions.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pending",
		Preparing:     "preparing",
		Delivering:    "delivering",
		Completed:     "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Preparing:  "preparing",
		Delivering: "delivering",
		Completed:  "completed",
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

// Validate checks if the Status value is one of the four lifecycle
// states. UnknownStatus and any other value are invalid.
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

// Prepare transitions the status to Preparing.
//
// Valid transitions:
//   - Pending -> Preparing
//
// Returns (0, error) for any other source state.
func (s Status) Prepare() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: %s is not a valid status to prepare", ErrInvalidStatusTransition, s.String())
	}

	return Preparing, nil
}

// Dispatch transitions the status to Delivering.
//
// Valid transitions:
//   - Preparing -> Delivering
//
// Returns (0, error) for any other source state. The caller is
// responsible for pairing this transition with a driver assignment.
func (s Status) Dispatch() (Status, error) {
	if s != Preparing {
		return 0, fmt.Errorf("%w: %s is not a valid status to dispatch", ErrInvalidStatusTransition, s.String())
	}

	return Delivering, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Delivering -> Completed
//
// Completed is final; completing twice is rejected.
func (s Status) Complete() (Status, error) {
	if s != Delivering {
		return 0, fmt.Errorf("%w: %s is not a valid status to complete", ErrInvalidStatusTransition, s.String())
	}

	return Completed, nil
}

// ValidateCanHaveDriver validates the consistency between the order
// status and driver assignment.
//
// Rules:
//   - Pending and Preparing orders must not have a driver
//   - Delivering and Completed orders must have a driver
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s != Delivering && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !driver && (s == Delivering || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}
