package order

import (
	"errors"
	"fmt"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one position of an order: a menu item, how many of it, and
// the price it had at checkout.
//
// The unit price is a snapshot. The card can be edited or an item
// deleted afterwards without retroactively changing what the customer
// owes; an item already missing at checkout is snapshotted at 0 and the
// line is kept so the record of what was requested survives.
type Line struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  int

	isConstructed bool
}

// NewLine creates a validated order line. Quantity must be positive,
// the unit price non-negative.
func NewLine(menuItemID kernel.UUID, quantity, unitPrice int) (Line, error) {
	if err := menuItemID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if unitPrice < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%d is negative", unitPrice),
		)
	}

	return Line{
		menuItemID:    menuItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was built via NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// MenuItemID returns the identifier of the ordered catalog item.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns how many units were ordered.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit snapshotted at checkout.
func (l Line) UnitPrice() int {
	return l.unitPrice
}

// Subtotal returns quantity times the snapshotted unit price.
func (l Line) Subtotal() int {
	return l.quantity * l.unitPrice
}
