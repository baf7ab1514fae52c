package http

import (
	"net/http"

	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/commands"
	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/queries"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/reservation"

	"github.com/labstack/echo/v4"
)

// SubmitReservationRequest is the body for booking a table or the
// private space. EndTime is required for the private space only.
type SubmitReservationRequest struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	WhatsApp     bool   `json:"whats_app"`
	Address      string `json:"address"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Guests       int    `json:"guests"`
	Kind         string `json:"kind"`
}

// ReservationResponse is one reservation in the staff listing.
type ReservationResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	WhatsApp     bool   `json:"whats_app"`
	Address      string `json:"address"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time,omitempty"`
	Guests       int    `json:"guests"`
	Status       string `json:"status"`
	Kind         string `json:"kind"`
}

// GetReservations handles GET /api/v1/reservations.
func (s *Server) GetReservations(ctx echo.Context) error {
	reservations, err := s.getReservationsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetReservationsQuery(),
	)
	if err != nil {
		return queryError(ctx, "Failed to retrieve reservations")
	}

	response := make([]ReservationResponse, len(reservations))
	for i, res := range reservations {
		response[i] = ReservationResponse{
			ID:           res.ID.String(),
			CustomerName: res.CustomerName,
			Phone:        res.Phone,
			WhatsApp:     res.WhatsApp,
			Address:      res.Address,
			Date:         res.Date,
			StartTime:    res.StartTime,
			EndTime:      res.EndTime,
			Guests:       res.Guests,
			Status:       res.Status.String(),
			Kind:         res.Kind.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitReservation handles POST /api/v1/reservations.
func (s *Server) SubmitReservation(ctx echo.Context) error {
	var req SubmitReservationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return badRequest(ctx, err)
	}

	kind, err := reservation.KindFromString(req.Kind)
	if err != nil {
		return badRequest(ctx, err)
	}

	reservationID := kernel.NewUUID()
	cmd, err := commands.NewSubmitReservationCommand(
		reservationID,
		req.CustomerName,
		phone,
		req.WhatsApp,
		req.Address,
		req.Date,
		req.StartTime,
		req.EndTime,
		req.Guests,
		kind,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.submitReservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: reservationID.String()})
}

// ConfirmReservation handles POST /api/v1/reservations/:id/confirm.
func (s *Server) ConfirmReservation(ctx echo.Context) error {
	reservationID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewConfirmReservationCommand(reservationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.confirmReservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelReservation handles POST /api/v1/reservations/:id/cancel.
func (s *Server) CancelReservation(ctx echo.Context) error {
	reservationID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelReservationCommand(reservationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.cancelReservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
