package commands

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var (
	ErrUpsertCustomerCommandIsNotConstructed = errors.New(
		"UpsertCustomerCommand must be created via NewUpsertCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("name")
)

// UpsertCustomerCommand represents a request to create or refresh a
// customer profile, keyed by phone number.
type UpsertCustomerCommand struct { //nolint:recvcheck //using for validation
	phone    kernel.Phone
	name     string
	address  string
	whatsApp bool

	guard guard.ConstructorGuard
}

// NewUpsertCustomerCommand creates a command to save a customer profile.
func NewUpsertCustomerCommand(phone kernel.Phone, name string, address string, whatsApp bool) (UpsertCustomerCommand, error) {
	cmd := UpsertCustomerCommand{
		address:  address,
		whatsApp: whatsApp,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPhone(phone),
		cmd.setName(name),
	); err != nil {
		return UpsertCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpsertCustomerCommandIsNotConstructed)
}

// Phone returns the profile's identifying phone number.
func (c UpsertCustomerCommand) Phone() kernel.Phone {
	return c.phone
}

// Name returns the customer's display name.
func (c UpsertCustomerCommand) Name() string {
	return c.name
}

// Address returns the customer's address, possibly empty.
func (c UpsertCustomerCommand) Address() string {
	return c.address
}

// WhatsApp reports the customer's contact preference.
func (c UpsertCustomerCommand) WhatsApp() bool {
	return c.whatsApp
}

func (c *UpsertCustomerCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *UpsertCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}
