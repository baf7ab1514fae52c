package commands

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrUpdateTemplateCommandIsNotConstructed = errors.New(
	"UpdateTemplateCommand must be created via NewUpdateTemplateCommand constructor",
)

// UpdateTemplateCommand represents a staff edit of a notification
// message. Placeholders in the text are kept verbatim for rendering.
type UpdateTemplateCommand struct { //nolint:recvcheck //using for validation
	tpl template.Template

	guard guard.ConstructorGuard
}

// NewUpdateTemplateCommand creates a command to save a template text.
// The key must be one of the known template keys.
func NewUpdateTemplateCommand(key template.Key, text string) (UpdateTemplateCommand, error) {
	tpl, err := template.NewTemplate(key, text)
	if err != nil {
		return UpdateTemplateCommand{}, err
	}

	return UpdateTemplateCommand{
		tpl:   tpl,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTemplateCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTemplateCommandIsNotConstructed)
}

// Template returns the validated template to store.
func (c UpdateTemplateCommand) Template() template.Template {
	return c.tpl
}
