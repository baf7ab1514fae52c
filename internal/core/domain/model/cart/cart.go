package cart

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart was not created
	// through NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrCartIsEmpty is returned when checking out a cart with no lines.
	ErrCartIsEmpty = errors.New("cart has no lines")
)

// Line is one menu item in a cart with its picked quantity.
type Line struct {
	menuItemID kernel.UUID
	quantity   int
}

// MenuItemID returns the referenced menu item.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the picked quantity, always positive.
func (l Line) Quantity() int {
	return l.quantity
}

// Cart is a customer's pending selection, keyed by phone number.
// Lines keep first-added order; quantities that drop to zero or below
// remove the line entirely.
type Cart struct {
	phone kernel.Phone
	lines []Line

	isConstructed bool
}

// NewCart creates an empty cart for a customer.
func NewCart(phone kernel.Phone) (*Cart, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		phone:         phone,
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart with its lines from persistence.
// Lines with non-positive quantities are rejected.
func RestoreCart(phone kernel.Phone, lines []Line) (*Cart, error) {
	c, err := NewCart(phone)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := line.menuItemID.Validate(); err != nil {
			return nil, err
		}
		if line.quantity <= 0 {
			return nil, errs.NewValueIsRequiredError("quantity")
		}
	}

	c.lines = append(c.lines, lines...)
	return c, nil
}

// RestoreLine reconstructs a cart line from persistence.
func RestoreLine(menuItemID kernel.UUID, quantity int) Line {
	return Line{menuItemID: menuItemID, quantity: quantity}
}

// Validate ensures the Cart was built through a factory function.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// Phone returns the owning customer's phone number.
func (c *Cart) Phone() kernel.Phone {
	return c.phone
}

// Lines returns a copy of the cart's lines in first-added order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Add puts one unit of a menu item into the cart, incrementing the
// quantity when the item is already present.
func (c *Cart) Add(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	for i, line := range c.lines {
		if line.menuItemID.IsEqual(menuItemID) {
			c.lines[i].quantity++
			return nil
		}
	}

	c.lines = append(c.lines, Line{menuItemID: menuItemID, quantity: 1})
	return nil
}

// ChangeQuantity adjusts a line's quantity by delta. A resulting
// quantity of zero or less removes the line. Adjusting an item that is
// not in the cart is a no-op.
func (c *Cart) ChangeQuantity(menuItemID kernel.UUID, delta int) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	for i, line := range c.lines {
		if !line.menuItemID.IsEqual(menuItemID) {
			continue
		}

		if line.quantity+delta <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].quantity += delta
		}
		return nil
	}

	return nil
}

// Clear removes every line, leaving an empty cart.
func (c *Cart) Clear() {
	c.lines = nil
}
