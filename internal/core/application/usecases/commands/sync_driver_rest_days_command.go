package commands

import (
	"errors"
	"strings"

	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrSyncDriverRestDaysCommandIsNotConstructed = errors.New(
	"SyncDriverRestDaysCommand must be created via NewSyncDriverRestDaysCommand constructor",
)

// SyncDriverRestDaysCommand aligns every driver's availability with the
// weekly rest-day schedule for the given day. Drivers resting today go
// off duty, drivers whose rest day has passed come back.
type SyncDriverRestDaysCommand struct { //nolint:recvcheck //using for validation
	day string

	guard guard.ConstructorGuard
}

// NewSyncDriverRestDaysCommand creates a command for the given French
// weekday name, e.g. "Lundi".
func NewSyncDriverRestDaysCommand(day string) (SyncDriverRestDaysCommand, error) {
	cmd := SyncDriverRestDaysCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDay(day); err != nil {
		return SyncDriverRestDaysCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncDriverRestDaysCommand) Validate() error {
	return c.guard.Validate(ErrSyncDriverRestDaysCommandIsNotConstructed)
}

// Day returns the French weekday name the sync runs for.
func (c SyncDriverRestDaysCommand) Day() string {
	return c.day
}

func (c *SyncDriverRestDaysCommand) setDay(day string) error {
	if strings.TrimSpace(day) == "" {
		return errs.NewValueIsRequiredError("day")
	}

	c.day = day
	return nil
}
