package reservation

import (
	"fmt"

	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// Kind distinguishes an ordinary table booking from a privatization of
// the whole space for an event.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	UnknownKind Kind = iota

	// Table is a regular table for a small party.
	Table

	// Espace privatizes the space: at least EspaceMinGuests guests and
	// an explicit end time are required.
	Espace
)

// EspaceMinGuests is the minimum party size for privatizing the space.
const EspaceMinGuests = 8

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "unknown",
		Table:       "table",
		Espace:      "espace",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // UnknownKind is intentionally excluded as it's invalid
	return map[Kind]string{
		Table:  "table",
		Espace: "espace",
	}
}

// KindFromString parses a kind from its wire representation.
func KindFromString(s string) (Kind, error) {
	for kind, name := range getValidKindStrings() {
		if name == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause(
		"type",
		fmt.Errorf("%q is not a valid reservation type", s),
	)
}

// Validate checks that the kind is table or espace.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid reservation type", k))
	}
	return nil
}

// String returns the lowercase name of the kind.
// Implements fmt.Stringer; safe on any value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
