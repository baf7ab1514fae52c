package menu

import (
	"errors"
	"fmt"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrItemNameIsRequired is returned when attempting to create an item without a name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Item is a catalog entry on the card: a crêpe, a drink or an extra.
//
// Invariants:
//   - valid unique identifier
//   - non-empty name
//   - non-negative price, expressed in dinars (the smallest unit used
//     on the card; there are no centimes)
//   - category from the fixed enumeration
//
// Orders never hold an Item: they snapshot the identifier and price at
// checkout, so editing or deleting an item leaves past orders intact.
type Item struct {
	id          kernel.UUID
	name        string
	description string
	price       int
	category    Category
	imageURL    string

	isConstructed bool
}

// NewItem creates a catalog item with validation. Description and
// imageURL are optional.
func NewItem(id kernel.UUID, name, description string, price int, category Category, imageURL string) (*Item, error) {
	item := &Item{
		description:   description,
		imageURL:      imageURL,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence. The same
// invariants apply; rows that fail them are treated as corrupt.
func RestoreItem(id kernel.UUID, name, description string, price int, category Category, imageURL string) (*Item, error) {
	return NewItem(id, name, description, price, category, imageURL)
}

// Validate ensures the Item was built through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by identifier.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the item's card description.
func (i *Item) Description() string {
	return i.description
}

// Price returns the item's price in dinars.
func (i *Item) Price() int {
	return i.price
}

// Category returns the item's category.
func (i *Item) Category() Category {
	return i.category
}

// ImageURL returns the item's illustration URL, possibly empty.
func (i *Item) ImageURL() string {
	return i.imageURL
}

// Rename updates name and description together, keeping the name
// non-empty.
func (i *Item) Rename(name, description string) error {
	if err := i.setName(name); err != nil {
		return err
	}
	i.description = description
	return nil
}

// ChangePrice sets a new non-negative price. Past orders are not
// affected: they carry their own price snapshot.
func (i *Item) ChangePrice(price int) error {
	return i.setPrice(price)
}

// ChangeCategory moves the item to another section of the card.
func (i *Item) ChangeCategory(category Category) error {
	return i.setCategory(category)
}

// ChangeImage replaces the illustration URL. Empty clears it.
func (i *Item) ChangeImage(imageURL string) {
	i.imageURL = imageURL
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}
