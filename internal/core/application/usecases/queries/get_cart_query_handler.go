package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
)

// GetCartQueryHandler retrieves a customer's cart from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query. Lines come back in the order items were
// first added; a customer without a cart gets an empty slice.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) ([]GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]GetCartQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cl.menu_item_id,
			mi.name,
			mi.price,
			cl.quantity
		FROM cart_lines cl
		JOIN menu_items mi ON mi.id = cl.menu_item_id
		WHERE cl.phone = ?
		ORDER BY cl.position
	`, query.Phone().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetCartQueryResponse
		var menuItemID uuid.UUID

		err = rows.Scan(
			&menuItemID,
			&line.Name,
			&line.Price,
			&line.Quantity,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.MenuItemID = itemID

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
