package queries

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart with current catalogue
// names and prices joined in for display.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	phone kernel.Phone

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query to retrieve one customer's cart.
func NewGetCartQuery(phone kernel.Phone) (GetCartQuery, error) {
	query := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPhone(phone); err != nil {
		return GetCartQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// Phone returns the cart owner's phone number.
func (q GetCartQuery) Phone() kernel.Phone {
	return q.phone
}

func (q *GetCartQuery) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	q.phone = phone
	return nil
}

// GetCartQueryResponse represents one cart line in the read model.
// Name and Price reflect the catalogue now, not a snapshot; the
// snapshot happens at checkout.
type GetCartQueryResponse struct {
	MenuItemID kernel.UUID
	Name       string
	Price      int
	Quantity   int
}
