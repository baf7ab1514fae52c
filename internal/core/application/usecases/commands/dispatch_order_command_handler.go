package commands

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/services"
	"github.com/Pandalivraison/ALOUETTE/internal/core/ports"
)

// DispatchOrderCommandHandler hands an order to a driver and notifies
// the customer that the delivery is on its way.
//
// The driver's availability is re-read inside the transaction, so two
// staff members dispatching to the same driver at once cannot both
// succeed: the second transaction sees the driver already Busy and
// fails without touching the order.
type DispatchOrderCommandHandler struct {
	uowFactory OrderLifecycleUoWFactory
	composer   services.NotificationComposer
	notifier   ports.Notifier
}

// NewDispatchOrderCommandHandler creates a handler for delivery hand-off operations.
func NewDispatchOrderCommandHandler(
	uowFactory OrderLifecycleUoWFactory,
	composer services.NotificationComposer,
	notifier ports.Notifier,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		composer:   composer,
		notifier:   notifier,
	}
}

// Handle processes the dispatch command. Fails when the order is not
// in preparation or the driver is not available.
func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	driverRepo := uow.DriverRepository()

	drv, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = drv.TakeDelivery(); err != nil {
		return err
	}

	if err = ord.Dispatch(drv.ID()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	recipient := lookupRecipient(ctx, uow.CustomerRepository(), ord.CustomerPhone())

	tpl, err := uow.TemplateRepository().Get(ctx, template.OrderDelivering)
	if err != nil {
		return err
	}

	text, err := h.composer.ComposeForOrder(tpl, ord, recipient.name, drv.Name())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Dispatch(ctx, ord.CustomerPhone(), recipient.whatsApp, text)
	return nil
}
