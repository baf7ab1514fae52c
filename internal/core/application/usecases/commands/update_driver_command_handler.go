package commands

import (
	"context"
)

// UpdateDriverCommandHandler applies profile edits to fleet drivers.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverCommandHandler creates a handler for driver profile edits.
func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile edit command.
func (h *UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) error {
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

	driverRepo := uow.DriverRepository()

	drv, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = drv.UpdateProfile(cmd.Name(), cmd.Phone(), cmd.Vehicle(), cmd.DaysOff()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
