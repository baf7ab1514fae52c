package kernel

import (
	"strings"

	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// ErrPhoneIsRequired indicates an empty phone number.
var ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")

// Phone is the value object for customer and driver phone numbers.
// It stores the number exactly as typed, minus surrounding whitespace;
// turning it into an international WhatsApp address is the job of the
// messaging adapter, not the domain.
//
// Phone doubles as the natural key for customers, who authenticate by
// phone number rather than by a generated identifier.
type Phone struct {
	value string
}

// NewPhone creates a Phone from its raw representation.
// Returns ErrPhoneIsRequired if the trimmed value is empty.
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Phone{}, ErrPhoneIsRequired
	}
	return Phone{value: trimmed}, nil
}

// String returns the phone number as stored.
func (p Phone) String() string {
	return p.value
}

// IsEqual reports whether two phone numbers are the same.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// Validate returns ErrPhoneIsRequired for the zero value.
func (p Phone) Validate() error {
	if p.value == "" {
		return ErrPhoneIsRequired
	}
	return nil
}
