package commands

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/services"
	"github.com/Pandalivraison/ALOUETTE/internal/core/ports"
)

// PrepareOrderCommandHandler moves a pending order to Preparing and
// notifies the customer once the change is committed.
type PrepareOrderCommandHandler struct {
	uowFactory OrderLifecycleUoWFactory
	composer   services.NotificationComposer
	notifier   ports.Notifier
}

// NewPrepareOrderCommandHandler creates a handler for kitchen hand-off operations.
func NewPrepareOrderCommandHandler(
	uowFactory OrderLifecycleUoWFactory,
	composer services.NotificationComposer,
	notifier ports.Notifier,
) PrepareOrderCommandHandler {
	return PrepareOrderCommandHandler{
		uowFactory: uowFactory,
		composer:   composer,
		notifier:   notifier,
	}
}

// Handle processes the prepare command. The notification goes out
// after commit; a failed send never rolls back the status change.
func (h *PrepareOrderCommandHandler) Handle(ctx context.Context, cmd PrepareOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.Prepare(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	recipient := lookupRecipient(ctx, uow.CustomerRepository(), ord.CustomerPhone())

	tpl, err := uow.TemplateRepository().Get(ctx, template.OrderPreparing)
	if err != nil {
		return err
	}

	text, err := h.composer.ComposeForOrder(tpl, ord, recipient.name, "")
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Dispatch(ctx, ord.CustomerPhone(), recipient.whatsApp, text)
	return nil
}
