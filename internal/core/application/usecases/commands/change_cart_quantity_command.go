package commands

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var (
	ErrChangeCartQuantityCommandIsNotConstructed = errors.New(
		"ChangeCartQuantityCommand must be created via NewChangeCartQuantityCommand constructor",
	)
	ErrDeltaIsRequired = errs.NewValueIsRequiredError("delta")
)

// ChangeCartQuantityCommand represents a request to adjust the
// quantity of a cart line by a positive or negative step.
type ChangeCartQuantityCommand struct { //nolint:recvcheck //using for validation
	phone      kernel.Phone
	menuItemID kernel.UUID
	delta      int

	guard guard.ConstructorGuard
}

// NewChangeCartQuantityCommand creates a command to adjust a cart line.
// delta must be non-zero; a drop to zero or below removes the line.
func NewChangeCartQuantityCommand(phone kernel.Phone, menuItemID kernel.UUID, delta int) (ChangeCartQuantityCommand, error) {
	cmd := ChangeCartQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPhone(phone),
		cmd.setMenuItemID(menuItemID),
		cmd.setDelta(delta),
	); err != nil {
		return ChangeCartQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartQuantityCommandIsNotConstructed)
}

// Phone returns the owning customer's phone number.
func (c ChangeCartQuantityCommand) Phone() kernel.Phone {
	return c.phone
}

// MenuItemID returns the cart line's menu item.
func (c ChangeCartQuantityCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Delta returns the signed quantity adjustment.
func (c ChangeCartQuantityCommand) Delta() int {
	return c.delta
}

func (c *ChangeCartQuantityCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *ChangeCartQuantityCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *ChangeCartQuantityCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsRequired
	}

	c.delta = delta
	return nil
}
