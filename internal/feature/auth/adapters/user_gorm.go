// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/usecase"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/db"
)

type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a UserRepository backed by gorm.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

const (
	guestNombre = "Invitado"
	guestEmail  = "invitado@mil-sabores.invalid"
	// guestPassword is not a bcrypt hash, so no password ever matches it.
	guestPassword = "!"
)

// SeedGuest reserves id for the anonymous cart owner. It is idempotent and
// keeps the id sequence past the reserved row so signups never receive it.
func (r *userGorm) SeedGuest(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		guest := entity.User{
			ID:              id,
			Nombre:          guestNombre,
			Email:           guestEmail,
			Password:        guestPassword,
			FechaNacimiento: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&guest).Error; err != nil {
			return err
		}
		if tx.Dialector.Name() != "postgres" {
			return nil
		}
		return tx.Exec(`SELECT setval(pg_get_serial_sequence('usuario', 'id_usuario'),
			GREATEST((SELECT MAX(id_usuario) FROM usuario), ?))`, id).Error
	})
}

// Create inserts u. A taken email yields usecase.ErrEmailAlreadyExists.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail returns usecase.ErrUserNotFound when no row matches.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID returns usecase.ErrUserNotFound when no row matches.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id_usuario = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
