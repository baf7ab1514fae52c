package commands

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/menu"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add a dish or drink to
// the catalogue.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	description string
	price       int
	category    menu.Category
	imageURL    string

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
func NewCreateMenuItemCommand(
	itemID kernel.UUID,
	name string,
	description string,
	price int,
	category menu.Category,
	imageURL string,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		name:        name,
		description: description,
		price:       price,
		category:    category,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// ItemID returns the identifier for the item being created.
func (c CreateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the item's display name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the item's description.
func (c CreateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the item's price in dinars.
func (c CreateMenuItemCommand) Price() int {
	return c.price
}

// Category returns the item's menu category.
func (c CreateMenuItemCommand) Category() menu.Category {
	return c.category
}

// ImageURL returns the item's picture link, possibly empty.
func (c CreateMenuItemCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
