package commands

import (
	"context"
)

// UpdateTemplateCommandHandler stores staff edits of notification messages.
type UpdateTemplateCommandHandler struct {
	uowFactory TemplateUoWFactory
}

// NewUpdateTemplateCommandHandler creates a handler for template edits.
func NewUpdateTemplateCommandHandler(uowFactory TemplateUoWFactory) UpdateTemplateCommandHandler {
	return UpdateTemplateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the template edit command.
func (h *UpdateTemplateCommandHandler) Handle(ctx context.Context, cmd UpdateTemplateCommand) error {
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

	if err := uow.TemplateRepository().Save(ctx, cmd.Template()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
