package commands

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrConfirmReservationCommandIsNotConstructed = errors.New(
	"ConfirmReservationCommand must be created via NewConfirmReservationCommand constructor",
)

// ConfirmReservationCommand represents a staff decision to accept a
// pending booking.
type ConfirmReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmReservationCommand creates a command to confirm a reservation.
func NewConfirmReservationCommand(reservationID kernel.UUID) (ConfirmReservationCommand, error) {
	cmd := ConfirmReservationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setReservationID(reservationID); err != nil {
		return ConfirmReservationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReservationCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReservationCommandIsNotConstructed)
}

// ReservationID returns the reservation to confirm.
func (c ConfirmReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

func (c *ConfirmReservationCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}
