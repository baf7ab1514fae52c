package http

import (
	"net/http"

	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// UpsertCustomerRequest is the body for saving a customer profile.
type UpsertCustomerRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	WhatsApp bool   `json:"whats_app"`
}

// UpsertCustomer handles PUT /api/v1/customers/:phone. First contact
// creates the profile, later calls update it.
func (s *Server) UpsertCustomer(ctx echo.Context) error {
	phone, err := pathPhone(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpsertCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpsertCustomerCommand(phone, req.Name, req.Address, req.WhatsApp)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.upsertCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
