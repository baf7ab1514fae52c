package commands

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand represents a request to put one unit of a menu item
// into a customer's cart.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	phone      kernel.Phone
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add a menu item to a cart.
func NewAddToCartCommand(phone kernel.Phone, menuItemID kernel.UUID) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPhone(phone),
		cmd.setMenuItemID(menuItemID),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// Phone returns the owning customer's phone number.
func (c AddToCartCommand) Phone() kernel.Phone {
	return c.phone
}

// MenuItemID returns the menu item to add.
func (c AddToCartCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c *AddToCartCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *AddToCartCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}
