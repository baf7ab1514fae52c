package http

import (
	"net/http"

	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/commands"
	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/queries"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// DriverRequest is the body for registering or editing a driver.
type DriverRequest struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Vehicle string   `json:"vehicle"`
	DaysOff []string `json:"days_off"`
}

// DriverResponse is one driver in the fleet listing.
type DriverResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Vehicle         string   `json:"vehicle"`
	Status          string   `json:"status"`
	DaysOff         []string `json:"days_off"`
	TotalDeliveries int      `json:"total_deliveries"`
	Rating          float64  `json:"rating"`
}

func driverListResponse(drivers []queries.GetAllDriversQueryResponse) []DriverResponse {
	response := make([]DriverResponse, len(drivers))
	for i, drv := range drivers {
		response[i] = DriverResponse{
			ID:              drv.ID.String(),
			Name:            drv.Name,
			Phone:           drv.Phone,
			Vehicle:         drv.Vehicle,
			Status:          drv.Status.String(),
			DaysOff:         drv.DaysOff,
			TotalDeliveries: drv.TotalDeliveries,
			Rating:          drv.Rating,
		}
	}
	return response
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return queryError(ctx, "Failed to retrieve drivers")
	}

	return ctx.JSON(http.StatusOK, driverListResponse(drivers))
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	drivers, err := s.getAvailableDriversHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetAvailableDriversQuery(),
	)
	if err != nil {
		return queryError(ctx, "Failed to retrieve available drivers")
	}

	return ctx.JSON(http.StatusOK, driverListResponse(drivers))
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req DriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return badRequest(ctx, err)
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, req.Name, phone, req.Vehicle, req.DaysOff)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: driverID.String()})
}

// UpdateDriver handles PUT /api/v1/drivers/:id.
func (s *Server) UpdateDriver(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req DriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID, req.Name, phone, req.Vehicle, req.DaysOff)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.deleteDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
