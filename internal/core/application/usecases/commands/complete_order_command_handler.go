package commands

import (
	"context"
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/services"
	"github.com/Pandalivraison/ALOUETTE/internal/core/ports"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// CompleteOrderCommandHandler closes out a delivery: the order becomes
// Completed, the driver returns to Available with one more delivery on
// their record, and the customer gets the final notification.
//
// A driver removed from the fleet mid-delivery does not block
// completion; the order closes and the driver update is skipped.
type CompleteOrderCommandHandler struct {
	uowFactory OrderLifecycleUoWFactory
	composer   services.NotificationComposer
	notifier   ports.Notifier
}

// NewCompleteOrderCommandHandler creates a handler for delivery completion operations.
func NewCompleteOrderCommandHandler(
	uowFactory OrderLifecycleUoWFactory,
	composer services.NotificationComposer,
	notifier ports.Notifier,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		composer:   composer,
		notifier:   notifier,
	}
}

// Handle processes the completion command.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = ord.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	driverName, err := h.releaseDriver(ctx, uow, ord.Driver())
	if err != nil {
		return err
	}

	recipient := lookupRecipient(ctx, uow.CustomerRepository(), ord.CustomerPhone())

	tpl, err := uow.TemplateRepository().Get(ctx, template.OrderCompleted)
	if err != nil {
		return err
	}

	text, err := h.composer.ComposeForOrder(tpl, ord, recipient.name, driverName)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Dispatch(ctx, ord.CustomerPhone(), recipient.whatsApp, text)
	return nil
}

// releaseDriver returns the driver to the available pool and reports
// their name for the customer notification. The name is empty only
// when no driver is assigned or the driver no longer exists.
func (h *CompleteOrderCommandHandler) releaseDriver(
	ctx context.Context,
	uow OrderLifecycleUoW,
	driverID *kernel.UUID,
) (string, error) {
	if driverID == nil {
		return "", nil
	}

	driverRepo := uow.DriverRepository()

	drv, err := driverRepo.Get(ctx, *driverID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if err = drv.CompleteDelivery(); err != nil {
		return "", err
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return "", err
	}

	return drv.Name(), nil
}
