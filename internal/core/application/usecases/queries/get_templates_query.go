package queries

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrGetTemplatesQueryIsNotConstructed = errors.New(
	"GetTemplatesQuery must be created via NewGetTemplatesQuery constructor",
)

// GetTemplatesQuery retrieves every notification template for the
// staff settings page, saved edits merged over the stock defaults.
type GetTemplatesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTemplatesQuery creates a query to retrieve all templates.
func NewGetTemplatesQuery() GetTemplatesQuery {
	return GetTemplatesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTemplatesQuery) Validate() error {
	return q.guard.Validate(ErrGetTemplatesQueryIsNotConstructed)
}

// GetTemplatesQueryResponse represents one template in the read model.
type GetTemplatesQueryResponse struct {
	Key  template.Key
	Text string
}
