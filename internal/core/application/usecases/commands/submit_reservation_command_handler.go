package commands

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/reservation"
)

// SubmitReservationCommandHandler persists a new booking request in
// Pending status. Staff confirm or cancel it later.
type SubmitReservationCommandHandler struct {
	uowFactory ReservationUoWFactory
}

// NewSubmitReservationCommandHandler creates a handler for booking submissions.
func NewSubmitReservationCommandHandler(uowFactory ReservationUoWFactory) SubmitReservationCommandHandler {
	return SubmitReservationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission. The aggregate enforces the booking
// rules, including the private space minimum party and end time.
func (h *SubmitReservationCommandHandler) Handle(ctx context.Context, cmd SubmitReservationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	res, err := reservation.NewReservation(
		cmd.ReservationID(),
		cmd.CustomerName(),
		cmd.Phone(),
		cmd.WhatsApp(),
		cmd.Address(),
		cmd.Date(),
		cmd.StartTime(),
		cmd.EndTime(),
		cmd.Guests(),
		cmd.Kind(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ReservationRepository().Add(ctx, res); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
