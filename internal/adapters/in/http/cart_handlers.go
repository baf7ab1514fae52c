package http

import (
	"net/http"

	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/commands"
	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/queries"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AddToCartRequest is the body for adding one unit of a dish.
type AddToCartRequest struct {
	MenuItemID string `json:"menu_item_id"`
}

// ChangeCartQuantityRequest adjusts a line by a signed delta.
type ChangeCartQuantityRequest struct {
	Delta int `json:"delta"`
}

// CartLineResponse is one line of a customer's cart, joined with the
// current menu for display.
type CartLineResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Quantity   int    `json:"quantity"`
}

// GetCart handles GET /api/v1/carts/:phone.
func (s *Server) GetCart(ctx echo.Context) error {
	phone, err := pathPhone(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetCartQuery(phone)
	if err != nil {
		return badRequest(ctx, err)
	}

	lines, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, "Failed to retrieve cart")
	}

	response := make([]CartLineResponse, len(lines))
	for i, line := range lines {
		response[i] = CartLineResponse{
			MenuItemID: line.MenuItemID.String(),
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddToCart handles POST /api/v1/carts/:phone/items.
func (s *Server) AddToCart(ctx echo.Context) error {
	phone, err := pathPhone(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AddToCartRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	itemID, err := kernel.UUIDFromString(req.MenuItemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddToCartCommand(phone, itemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.addToCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeCartQuantity handles PATCH /api/v1/carts/:phone/items/:itemId.
func (s *Server) ChangeCartQuantity(ctx echo.Context) error {
	phone, err := pathPhone(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req ChangeCartQuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangeCartQuantityCommand(phone, itemID, req.Delta)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.changeCartQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/carts/:phone/checkout. The cart turns
// into an order priced at the menu's current prices, then empties.
func (s *Server) Checkout(ctx echo.Context) error {
	phone, err := pathPhone(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, phone)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}
