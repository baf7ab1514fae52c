package commands

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler registers new drivers in the fleet.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	drv, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.Phone(), cmd.Vehicle(), cmd.DaysOff())
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

	if err = uow.DriverRepository().Add(ctx, drv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
