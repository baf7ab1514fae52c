package ports

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
)

// TemplateRepository defines the persistence contract for notification templates.
// Missing keys fall back to the stock messages from template.Defaults.
type TemplateRepository interface {
	// Save stores or replaces the text for a template key.
	Save(ctx context.Context, aggregate template.Template) error

	// Get retrieves the template for a key, falling back to the stock
	// message when staff never edited it.
	Get(ctx context.Context, key template.Key) (template.Template, error)

	// GetAll retrieves every template in display order, mixing saved
	// texts with stock defaults.
	GetAll(ctx context.Context) ([]template.Template, error)
}
