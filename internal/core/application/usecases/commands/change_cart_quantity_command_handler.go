package commands

import (
	"context"
)

// ChangeCartQuantityCommandHandler handles quantity adjustments on
// cart lines, including implicit removal when a line drops to zero.
type ChangeCartQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewChangeCartQuantityCommandHandler creates a handler for cart quantity operations.
func NewChangeCartQuantityCommandHandler(uowFactory CartUoWFactory) ChangeCartQuantityCommandHandler {
	return ChangeCartQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change command.
func (h *ChangeCartQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeCartQuantityCommand) error {
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

	cartRepo := uow.CartRepository()

	customerCart, err := cartRepo.Get(ctx, cmd.Phone())
	if err != nil {
		return err
	}

	if err = customerCart.ChangeQuantity(cmd.MenuItemID(), cmd.Delta()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
