package commands

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/services"
	"github.com/Pandalivraison/ALOUETTE/internal/core/ports"
)

// ConfirmReservationCommandHandler confirms a pending reservation and
// notifies the customer once the change is committed.
type ConfirmReservationCommandHandler struct {
	uowFactory ReservationLifecycleUoWFactory
	composer   services.NotificationComposer
	notifier   ports.Notifier
}

// NewConfirmReservationCommandHandler creates a handler for reservation confirmations.
func NewConfirmReservationCommandHandler(
	uowFactory ReservationLifecycleUoWFactory,
	composer services.NotificationComposer,
	notifier ports.Notifier,
) ConfirmReservationCommandHandler {
	return ConfirmReservationCommandHandler{
		uowFactory: uowFactory,
		composer:   composer,
		notifier:   notifier,
	}
}

// Handle processes the confirmation. A reservation already confirmed
// or cancelled rejects the command and stays untouched.
func (h *ConfirmReservationCommandHandler) Handle(ctx context.Context, cmd ConfirmReservationCommand) error {
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

	if err = res.Confirm(); err != nil {
		return err
	}

	if err = reservationRepo.Update(ctx, res); err != nil {
		return err
	}

	tpl, err := uow.TemplateRepository().Get(ctx, template.ReservationConfirmation)
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
