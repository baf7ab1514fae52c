package driver

import (
	"fmt"

	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// Status represents a driver's availability:
//
//	Available <──> Busy        (taking and finishing a delivery)
//	Available <──> Off         (rest days)
//
// Busy and Off never convert into each other directly: a busy driver
// finishes the delivery first, an off driver comes back to work first.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Available means the driver can take the next dispatched order.
	Available

	// Busy means the driver is out delivering an order.
	Busy

	// Off means the driver is on a rest day and must not be assigned.
	Off
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Available:     "available",
		Busy:          "busy",
		Off:           "off",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Busy:      "busy",
		Off:       "off",
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
