package commands

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/services"
	"github.com/Pandalivraison/ALOUETTE/internal/core/ports"
)

// CancelReservationCommandHandler cancels a pending reservation and
// notifies the customer once the change is committed.
type CancelReservationCommandHandler struct {
	uowFactory ReservationLifecycleUoWFactory
	composer   services.NotificationComposer
	notifier   ports.Notifier
}

// NewCancelReservationCommandHandler creates a handler for reservation cancellations.
func NewCancelReservationCommandHandler(
	uowFactory ReservationLifecycleUoWFactory,
	composer services.NotificationComposer,
	notifier ports.Notifier,
) CancelReservationCommandHandler {
	return CancelReservationCommandHandler{
		uowFactory: uowFactory,
		composer:   composer,
		notifier:   notifier,
	}
}

// Handle processes the cancellation. A reservation already confirmed
// or cancelled rejects the command and stays untouched.
func (h *CancelReservationCommandHandler) Handle(ctx context.Context, cmd CancelReservationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()

	res, err := reservationRepo.Get(ctx, cmd.ReservationID())
	if err != nil {
		return err
	}

	if err = res.Cancel(); err != nil {
		return err
	}

	if err = reservationRepo.Update(ctx, res); err != nil {
		return err
	}

	tpl, err := uow.TemplateRepository().Get(ctx, template.ReservationCancellation)
	if err != nil {
		return err
	}

	text, err := h.composer.ComposeForReservation(tpl, res)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Dispatch(ctx, res.Phone(), res.WhatsApp(), text)
	return nil
}
