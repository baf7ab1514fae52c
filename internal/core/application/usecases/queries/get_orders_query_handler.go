package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/order"
)

// GetOrdersQueryHandler retrieves the order list from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first with their
// snapshotted lines attached.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.fetchOrders(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.attachLines(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOrdersQueryHandler) fetchOrders(ctx context.Context) ([]GetOrdersQueryResponse, map[uuid.UUID]int, error) {
	orders := make([]GetOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_phone,
			status,
			driver_id,
			created_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetOrdersQueryResponse
		var id uuid.UUID
		var status string
		var driverID *uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&response.CustomerPhone,
			&status,
			&driverID,
			&createdAt,
		)
		if err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		response.ID = orderID

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, nil, statusErr
		}
		response.Status = orderStatus
		response.CreatedAt = createdAt

		if driverID != nil {
			drvID, drvErr := kernel.UUIDFromBytes(driverID[:])
			if drvErr != nil {
				return nil, nil, drvErr
			}
			response.DriverID = &drvID
		}

		index[id] = len(orders)
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, index, nil
}

func (h GetOrdersQueryHandler) attachLines(
	ctx context.Context,
	orders []GetOrdersQueryResponse,
	index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			quantity,
			unit_price
		FROM order_lines
		ORDER BY order_id, position
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, menuItemID uuid.UUID
		var line GetOrdersQueryLine

		err = rows.Scan(
			&orderID,
			&menuItemID,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return err
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return idErr
		}
		line.MenuItemID = itemID

		i, ok := index[orderID]
		if !ok {
			continue
		}

		orders[i].Lines = append(orders[i].Lines, line)
		orders[i].Total += line.Quantity * line.UnitPrice
	}

	return rows.Err()
}
