package templaterepo

import (
	"context"
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTemplateRepository implements TemplateRepository using GORM.
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GORM template repository.
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

// Save stores or replaces the text for a template key.
func (r *GormTemplateRepository) Save(ctx context.Context, aggregate template.Template) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"text"}),
		}).
		Create(&dto).Error
}

// Get retrieves the template for a key, falling back to the stock
// message when staff never edited it.
func (r *GormTemplateRepository) Get(ctx context.Context, key template.Key) (template.Template, error) {
	if _, err := template.KeyFromString(string(key)); err != nil {
		return template.Template{}, err
	}

	var dto TemplateDTO
	err := r.db.WithContext(ctx).First(&dto, "key = ?", string(key)).Error
	if err == nil {
		return toDomain(dto)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return template.Template{}, err
	}

	for _, stock := range template.Defaults() {
		if stock.Key() == key {
			return stock, nil
		}
	}

	return template.Template{}, errs.NewObjectNotFoundError("template", string(key))
}

// GetAll retrieves every template in display order, mixing saved texts
// with stock defaults.
func (r *GormTemplateRepository) GetAll(ctx context.Context) ([]template.Template, error) {
	var dtos []TemplateDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	saved := make(map[template.Key]template.Template, len(dtos))
	for _, dto := range dtos {
		tpl, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		saved[tpl.Key()] = tpl
	}

	templates := make([]template.Template, 0, len(template.Keys()))
	for _, stock := range template.Defaults() {
		if tpl, ok := saved[stock.Key()]; ok {
			templates = append(templates, tpl)
			continue
		}
		templates = append(templates, stock)
	}

	return templates, nil
}
