// Package adapters provides the relational repository of the cart feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/usecase"
)

type cartGorm struct {
	db *gorm.DB
}

var _ usecase.CartRepository = (*cartGorm)(nil)

// NewCartGorm creates a CartRepository over db.
func NewCartGorm(db *gorm.DB) *cartGorm {
	return &cartGorm{db: db}
}

// AddLine upserts the cart and then the line inside one transaction. The
// unique (cart, product) index turns concurrent adds of the same product into
// a quantity increment.
func (r *cartGorm) AddLine(ctx context.Context, userID uint, line entity.CartLine) (uint, error) {
	var cartID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id_usuario_fk"}},
			DoNothing: true,
		}).Create(&entity.Cart{UserID: userID}).Error; err != nil {
			return err
		}

		var cart entity.Cart
		if err := tx.Where("id_usuario_fk = ?", userID).First(&cart).Error; err != nil {
			return err
		}

		line.ID = 0
		line.CartID = cart.ID
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id_carrito"}, {Name: "id_producto"}},
			DoUpdates: clause.Assignments(map[string]any{
				"cantidad": gorm.Expr("carrito_detalle.cantidad + excluded.cantidad"),
			}),
		}).Create(&line).Error; err != nil {
			return err
		}

		cartID = cart.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return cartID, nil
}

// FindByUserID loads the cart with lines ordered by id.
func (r *cartGorm) FindByUserID(ctx context.Context, userID uint) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id_carrito_detalle ASC") }).
		Where("id_usuario_fk = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// UpdateLineQuantity sets the quantity of a line of the user's cart.
func (r *cartGorm) UpdateLineQuantity(ctx context.Context, userID, cartID, lineID uint, quantity int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownedCart(tx, userID, cartID); err != nil {
			return err
		}
		res := tx.Model(&entity.CartLine{}).
			Where("id_carrito_detalle = ? AND id_carrito = ?", lineID, cartID).
			Update("cantidad", quantity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrLineNotFound
		}
		return nil
	})
}

// RemoveLine deletes a line and, in the same transaction, the cart when no
// lines remain.
func (r *cartGorm) RemoveLine(ctx context.Context, userID, cartID, lineID uint) (bool, error) {
	var cartDeleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownedCart(tx, userID, cartID); err != nil {
			return err
		}

		res := tx.Where("id_carrito_detalle = ? AND id_carrito = ?", lineID, cartID).Delete(&entity.CartLine{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrLineNotFound
		}

		var remaining int64
		if err := tx.Model(&entity.CartLine{}).Where("id_carrito = ?", cartID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}
		if err := tx.Delete(&entity.Cart{}, cartID).Error; err != nil {
			return err
		}
		cartDeleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return cartDeleted, nil
}

func ownedCart(tx *gorm.DB, userID, cartID uint) error {
	var n int64
	if err := tx.Model(&entity.Cart{}).
		Where("id_carrito = ? AND id_usuario_fk = ?", cartID, userID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return usecase.ErrCartNotFound
	}
	return nil
}
