package commands

import (
	"context"
)

// DeleteDriverCommandHandler removes drivers from the fleet.
type DeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver removals.
func NewDeleteDriverCommandHandler(uowFactory DriverUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	if err := uow.DriverRepository().Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
