package ports

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	// Add persists a new menu item to storage.
	Add(ctx context.Context, aggregate *menu.Item) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, aggregate *menu.Item) error

	// Get retrieves a menu item by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such item exists.
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// Delete removes a menu item from the catalogue. Existing order
	// lines keep their snapshotted price.
	Delete(ctx context.Context, id kernel.UUID) error
}
