package commands

import (
	"context"
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/customer"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// UpsertCustomerCommandHandler creates a profile on first contact and
// refreshes it on later edits. The admin flag survives updates.
type UpsertCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpsertCustomerCommandHandler creates a handler for profile upserts.
func NewUpsertCustomerCommandHandler(uowFactory CustomerUoWFactory) UpsertCustomerCommandHandler {
	return UpsertCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the upsert command.
func (h *UpsertCustomerCommandHandler) Handle(ctx context.Context, cmd UpsertCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()

	profile, err := customerRepo.Get(ctx, cmd.Phone())
	switch {
	case err == nil:
		if err = profile.UpdateProfile(cmd.Name(), cmd.Address(), cmd.WhatsApp()); err != nil {
			return err
		}
		if err = customerRepo.Update(ctx, profile); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		profile, err = customer.NewCustomer(cmd.Phone(), cmd.Name(), cmd.Address(), cmd.WhatsApp())
		if err != nil {
			return err
		}
		if err = customerRepo.Add(ctx, profile); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
