// Package templaterepo provides persistence for notification templates.
// Only edited templates are stored; unedited keys fall back to the
// stock French messages.
package templaterepo

import (
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
)

// TemplateDTO represents the database structure for persisting templates.
type TemplateDTO struct {
	Key  string `gorm:"primaryKey"`
	Text string
}

// TableName specifies the database table name for templates.
func (TemplateDTO) TableName() string {
	return "templates"
}

func fromDomain(aggregate template.Template) TemplateDTO {
	return TemplateDTO{
		Key:  string(aggregate.Key()),
		Text: aggregate.Text(),
	}
}

func toDomain(dto TemplateDTO) (template.Template, error) {
	key, err := template.KeyFromString(dto.Key)
	if err != nil {
		return template.Template{}, err
	}

	return template.NewTemplate(key, dto.Text)
}
