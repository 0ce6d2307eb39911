// Package adapters provides the gorm repository of the address feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/address/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/address/usecase"
)

type addressGorm struct {
	db *gorm.DB
}

var _ usecase.AddressRepository = (*addressGorm)(nil)

// NewAddressGorm creates an AddressRepository backed by gorm.
func NewAddressGorm(db *gorm.DB) *addressGorm {
	return &addressGorm{db: db}
}

// Seed inserts the reference regions and comunas. Rows already present are left alone.
func (r *addressGorm) Seed(ctx context.Context) error {
	regions := entity.SeedRegions()
	var comunas []entity.Comuna
	for _, reg := range regions {
		comunas = append(comunas, reg.Comunas...)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Comunas").Clauses(clause.OnConflict{DoNothing: true}).Create(&regions).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&comunas).Error
	})
}

// ListRegions returns regions north to south, comunas sorted by name.
func (r *addressGorm) ListRegions(ctx context.Context) ([]entity.Region, error) {
	var regions []entity.Region
	if err := r.db.WithContext(ctx).
		Preload("Comunas", func(db *gorm.DB) *gorm.DB { return db.Order("nombre ASC") }).
		Order("orden ASC").
		Find(&regions).Error; err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *addressGorm) ComunaExists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Comuna{}).Where("id_comuna = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListByUser returns the user's addresses, oldest first.
func (r *addressGorm) ListByUser(ctx context.Context, userID uint) ([]entity.Address, error) {
	var addrs []entity.Address
	if err := r.db.WithContext(ctx).
		Preload("Comuna").
		Where("usuario_id_usuario = ?", userID).
		Order("id_direccion ASC").
		Find(&addrs).Error; err != nil {
		return nil, err
	}
	return addrs, nil
}

func (r *addressGorm) FindByID(ctx context.Context, userID, id uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.db.WithContext(ctx).
		Preload("Comuna").
		Where("id_direccion = ? AND usuario_id_usuario = ?", id, userID).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAddressNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *addressGorm) Create(ctx context.Context, a *entity.Address) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

// Update writes every editable column, including a cleared unit.
func (r *addressGorm) Update(ctx context.Context, a *entity.Address) error {
	res := r.db.WithContext(ctx).Model(&entity.Address{}).
		Where("id_direccion = ? AND usuario_id_usuario = ?", a.ID, a.UserID).
		Updates(map[string]any{
			"calle":        a.Calle,
			"numero":       a.Numero,
			"departamento": a.Departamento,
			"id_comuna_fk": a.ComunaID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAddressNotFound
	}
	return nil
}

func (r *addressGorm) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id_direccion = ? AND usuario_id_usuario = ?", id, userID).
		Delete(&entity.Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAddressNotFound
	}
	return nil
}
