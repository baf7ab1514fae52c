package commands

import (
	"context"
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/cart"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// AddToCartCommandHandler handles adding menu items to customer carts.
// A customer without a cart gets one created on first add.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddToCartCommandHandler creates a handler for cart add operations.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
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
	switch {
	case err == nil:
		if err = customerCart.Add(cmd.MenuItemID()); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, customerCart); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		customerCart, err = cart.NewCart(cmd.Phone())
		if err != nil {
			return err
		}
		if err = customerCart.Add(cmd.MenuItemID()); err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, customerCart); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
