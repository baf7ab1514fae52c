package commands

import (
	"context"
)

// DeleteMenuItemCommandHandler removes items from the catalogue.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for catalogue removals.
func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
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

	if err := uow.MenuItemRepository().Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
