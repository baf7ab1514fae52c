package http

import (
	"net/http"
	"time"

	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/commands"
	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/queries"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// DispatchOrderRequest names the driver taking the order out.
type DispatchOrderRequest struct {
	DriverID string `json:"driver_id"`
}

// OrderLineResponse is one snapshotted line of an order.
type OrderLineResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int    `json:"unit_price"`
}

// OrderResponse is one order in the staff listing. Total comes from the
// prices snapshotted at checkout.
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerPhone string              `json:"customer_phone"`
	Status        string              `json:"status"`
	DriverID      *string             `json:"driver_id,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	Total         int                 `json:"total"`
	Lines         []OrderLineResponse `json:"lines"`
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return queryError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, ord := range orders {
		var driverID *string
		if ord.DriverID != nil {
			id := ord.DriverID.String()
			driverID = &id
		}

		lines := make([]OrderLineResponse, len(ord.Lines))
		for j, line := range ord.Lines {
			lines[j] = OrderLineResponse{
				MenuItemID: line.MenuItemID.String(),
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
			}
		}

		response[i] = OrderResponse{
			ID:            ord.ID.String(),
			CustomerPhone: ord.CustomerPhone,
			Status:        ord.Status.String(),
			DriverID:      driverID,
			CreatedAt:     ord.CreatedAt,
			Total:         ord.Total,
			Lines:         lines,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PrepareOrder handles POST /api/v1/orders/:id/prepare.
func (s *Server) PrepareOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewPrepareOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.prepareOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req DispatchOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
