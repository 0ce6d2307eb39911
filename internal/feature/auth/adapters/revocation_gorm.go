package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/usecase"
)

// revocationGorm stores revoked sessions in sesion_revocada. It is used when
// Redis is not configured.
type revocationGorm struct {
	db  *gorm.DB
	now func() time.Time
}

var _ usecase.RevocationStore = (*revocationGorm)(nil)

// NewRevocationGorm creates a RevocationStore backed by gorm.
func NewRevocationGorm(db *gorm.DB) *revocationGorm {
	return &revocationGorm{db: db, now: time.Now}
}

// Revoke records tokenID. Revoking twice is a no-op and expired tokens are skipped.
func (r *revocationGorm) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if !expiresAt.After(r.now()) {
		return nil
	}
	row := entity.RevokedSession{TokenID: tokenID, ExpiresAt: expiresAt.UTC()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

// IsRevoked reports whether tokenID was revoked and has not expired yet.
func (r *revocationGorm) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.RevokedSession{}).
		Where("jti = ? AND expires_at > ?", tokenID, r.now().UTC()).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// PurgeExpired deletes rows whose token has expired and returns how many went.
func (r *revocationGorm) PurgeExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.now().UTC()).
		Delete(&entity.RevokedSession{})
	return res.RowsAffected, res.Error
}
