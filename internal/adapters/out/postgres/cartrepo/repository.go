package cartrepo

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/cart"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add saves a new cart to the database.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dtos := fromDomain(aggregate)
	if len(dtos) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Update replaces the cart's lines wholesale. Clearing the cart at
// checkout removes every row for the phone.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	phone := aggregate.Phone().String()
	if err := r.db.WithContext(ctx).Delete(&CartLineDTO{}, "phone = ?", phone).Error; err != nil {
		return err
	}

	dtos := fromDomain(aggregate)
	if len(dtos) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Get retrieves the cart of a customer by phone number. A phone with no
// cart rows reads back as absent.
func (r *GormCartRepository) Get(ctx context.Context, phone kernel.Phone) (*cart.Cart, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartLineDTO
	if err := r.db.WithContext(ctx).
		Order("position").
		Find(&dtos, "phone = ?", phone.String()).Error; err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, errs.NewObjectNotFoundError("cart", phone.String())
	}

	return toDomain(phone, dtos)
}
