package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/adapters"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/usecase"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/session"
)

// NewRevocationStore creates a RevocationStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the relational database.
func NewRevocationStore(rdb *redis.Client, db *gorm.DB) usecase.RevocationStore {
	if rdb != nil {
		return session.NewRevocationRedis(rdb, session.DefaultPrefix)
	}
	return authadapters.NewRevocationGorm(db)
}
