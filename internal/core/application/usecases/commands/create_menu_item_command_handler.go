package commands

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler adds new dishes and drinks to the catalogue.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for catalogue additions.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := menu.NewItem(cmd.ItemID(), cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category(), cmd.ImageURL())
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

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
