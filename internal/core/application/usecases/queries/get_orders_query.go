package queries

import (
	"errors"
	"time"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/order"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves every order for the staff dashboard,
// newest first.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve the order list.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryLine is one snapshotted line of an order read model.
type GetOrdersQueryLine struct {
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  int
}

// GetOrdersQueryResponse represents one order in the read model. Total
// is computed from the snapshotted line prices, not the current menu.
type GetOrdersQueryResponse struct {
	ID            kernel.UUID
	CustomerPhone string
	Status        order.Status
	DriverID      *kernel.UUID
	CreatedAt     time.Time
	Total         int
	Lines         []GetOrdersQueryLine
}
