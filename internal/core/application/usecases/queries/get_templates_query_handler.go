package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
)

// GetTemplatesQueryHandler retrieves notification templates from the
// database, filling gaps with the stock defaults.
type GetTemplatesQueryHandler struct {
	db *gorm.DB
}

// NewGetTemplatesQueryHandler creates a handler for template queries.
func NewGetTemplatesQueryHandler(db *gorm.DB) GetTemplatesQueryHandler {
	return GetTemplatesQueryHandler{db: db}
}

// Handle executes the query. Every known key comes back exactly once,
// in display order, with the staff-saved text when one exists.
func (h GetTemplatesQueryHandler) Handle(
	ctx context.Context,
	query GetTemplatesQuery,
) ([]GetTemplatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	saved := make(map[template.Key]string)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			key,
			text
		FROM templates
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, text string
		if err = rows.Scan(&key, &text); err != nil {
			return nil, err
		}

		templateKey, keyErr := template.KeyFromString(key)
		if keyErr != nil {
			return nil, keyErr
		}
		saved[templateKey] = text
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	templates := make([]GetTemplatesQueryResponse, 0, len(template.Keys()))
	for _, stock := range template.Defaults() {
		text, ok := saved[stock.Key()]
		if !ok {
			text = stock.Text()
		}

		templates = append(templates, GetTemplatesQueryResponse{
			Key:  stock.Key(),
			Text: text,
		})
	}

	return templates, nil
}
