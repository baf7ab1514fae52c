package commands

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/menu"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a request to edit a catalogue item.
// New prices apply to future orders only; placed orders keep the price
// they were checked out with.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	description string
	price       int
	category    menu.Category
	imageURL    string

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to edit a menu item.
func NewUpdateMenuItemCommand(
	itemID kernel.UUID,
	name string,
	description string,
	price int,
	category menu.Category,
	imageURL string,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		name:        name,
		description: description,
		price:       price,
		category:    category,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ItemID returns the item being edited.
func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new display name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the new price in dinars.
func (c UpdateMenuItemCommand) Price() int {
	return c.price
}

// Category returns the new menu category.
func (c UpdateMenuItemCommand) Category() menu.Category {
	return c.category
}

// ImageURL returns the new picture link, possibly empty.
func (c UpdateMenuItemCommand) ImageURL() string {
	return c.imageURL
}

func (c *UpdateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
