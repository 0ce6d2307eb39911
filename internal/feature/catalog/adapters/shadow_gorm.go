// Package adapters provides the relational repositories of the catalog feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/usecase"
)

type shadowGorm struct {
	db *gorm.DB
}

var _ usecase.ShadowRepository = (*shadowGorm)(nil)

// NewShadowGorm creates a ShadowRepository over db.
func NewShadowGorm(db *gorm.DB) *shadowGorm {
	return &shadowGorm{db: db}
}

// FindByCode returns usecase.ErrShadowNotFound when no row matches.
func (r *shadowGorm) FindByCode(ctx context.Context, code string) (*entity.ProductShadow, error) {
	var s entity.ProductShadow
	if err := r.db.WithContext(ctx).Where("id_producto = ?", code).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrShadowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// UpsertByDocumentID inserts s; an existing row with the same document id has
// its code replaced, which follows code renames in the content service.
func (r *shadowGorm) UpsertByDocumentID(ctx context.Context, s *entity.ProductShadow) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "prod_document_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"id_producto"}),
	}).Create(s).Error
}
