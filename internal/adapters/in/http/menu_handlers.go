package http

import (
	"net/http"

	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/commands"
	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/queries"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/menu"

	"github.com/labstack/echo/v4"
)

// MenuItemRequest is the body for creating or updating a menu item.
type MenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

// MenuItemResponse is one dish in the menu listing.
type MenuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

// CreatedResponse returns the id of a freshly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return queryError(ctx, "Failed to retrieve menu")
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category.String(),
			ImageURL:    item.ImageURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/menu.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req MenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	category, err := menu.CategoryFromString(req.Category)
	if err != nil {
		return badRequest(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(itemID, req.Name, req.Description, req.Price, category, req.ImageURL)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: itemID.String()})
}

// UpdateMenuItem handles PUT /api/v1/menu/:id.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req MenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	category, err := menu.CategoryFromString(req.Category)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(itemID, req.Name, req.Description, req.Price, category, req.ImageURL)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMenuItem handles DELETE /api/v1/menu/:id.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(itemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.deleteMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
