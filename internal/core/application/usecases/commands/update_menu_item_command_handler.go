package commands

import (
	"context"
	"errors"
)

// UpdateMenuItemCommandHandler applies edits to a catalogue item.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for catalogue edits.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	menuRepo := uow.MenuItemRepository()

	item, err := menuRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = errors.Join(
		item.Rename(cmd.Name(), cmd.Description()),
		item.ChangePrice(cmd.Price()),
		item.ChangeCategory(cmd.Category()),
	); err != nil {
		return err
	}

	item.ChangeImage(cmd.ImageURL())

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
