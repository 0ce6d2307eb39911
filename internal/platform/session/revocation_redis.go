// Package session keeps the Redis-backed list of revoked session tokens.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/usecase"
)

// DefaultPrefix namespaces revocation keys: <prefix>:<jti>.
const DefaultPrefix = "session:revoked"

// RevocationRedis implements usecase.RevocationStore using Redis keys that
// expire together with the token they revoke.
type RevocationRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.RevocationStore = (*RevocationRedis)(nil)

// NewRevocationRedis creates a RevocationRedis writing under prefix.
func NewRevocationRedis(client *redis.Client, prefix string) *RevocationRedis {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RevocationRedis{client: client, prefix: prefix}
}

func (r *RevocationRedis) key(tokenID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, tokenID)
}

// Revoke records tokenID until expiresAt. Already expired tokens are skipped.
func (r *RevocationRedis) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.key(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether tokenID was revoked.
func (r *RevocationRedis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, r.key(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
