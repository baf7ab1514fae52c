package ports

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/customer"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer profiles.
type CustomerRepository interface {
	// Add persists a new customer profile to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer profile.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer profile by phone number.
	// Returns errs.ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, phone kernel.Phone) (*customer.Customer, error)
}
