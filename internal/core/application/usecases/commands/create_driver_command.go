package commands

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new delivery
// driver. New drivers start Available with a clean record.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	phone    kernel.Phone
	vehicle  string
	daysOff  []string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	name string,
	phone kernel.Phone,
	vehicle string,
	daysOff []string,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		name:    name,
		vehicle: vehicle,
		daysOff: daysOff,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setPhone(phone),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier for the driver being registered.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver's phone number.
func (c CreateDriverCommand) Phone() kernel.Phone {
	return c.phone
}

// Vehicle returns the driver's vehicle description.
func (c CreateDriverCommand) Vehicle() string {
	return c.vehicle
}

// DaysOff returns the driver's weekly rest days.
func (c CreateDriverCommand) DaysOff() []string {
	return c.daysOff
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}
