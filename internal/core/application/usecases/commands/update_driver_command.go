package commands

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand represents a request to edit a driver's profile.
// Status and delivery stats are never edited directly; they move
// through the delivery and rest day workflows.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	phone    kernel.Phone
	vehicle  string
	daysOff  []string

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to edit a driver profile.
func NewUpdateDriverCommand(
	driverID kernel.UUID,
	name string,
	phone kernel.Phone,
	vehicle string,
	daysOff []string,
) (UpdateDriverCommand, error) {
	cmd := UpdateDriverCommand{
		name:    name,
		vehicle: vehicle,
		daysOff: daysOff,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setPhone(phone),
	); err != nil {
		return UpdateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the driver being edited.
func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the new driver name.
func (c UpdateDriverCommand) Name() string {
	return c.name
}

// Phone returns the new phone number.
func (c UpdateDriverCommand) Phone() kernel.Phone {
	return c.phone
}

// Vehicle returns the new vehicle description.
func (c UpdateDriverCommand) Vehicle() string {
	return c.vehicle
}

// DaysOff returns the new weekly rest days.
func (c UpdateDriverCommand) DaysOff() []string {
	return c.daysOff
}

func (c *UpdateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}
