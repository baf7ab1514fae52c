package ports

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/cart"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for customer carts.
type CartRepository interface {
	// Add persists a new cart to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update replaces a cart's lines in storage, including clearing
	// them after checkout.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Get retrieves the cart of a customer by phone number.
	// Returns errs.ObjectNotFoundError when the customer has no cart yet.
	Get(ctx context.Context, phone kernel.Phone) (*cart.Cart, error)
}
