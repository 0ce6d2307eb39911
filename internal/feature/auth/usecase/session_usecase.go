package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	jwtmw "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/jwt"
)

// TokenGenerator signs session tokens.
type TokenGenerator interface {
	GenerateToken(userID uint) (jwtmw.Issued, error)
}

// TokenParser verifies session tokens.
type TokenParser interface {
	Parse(token string) (*jwtmw.Claims, error)
}

// RevocationStore remembers destroyed sessions until they would have expired.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type sessionUsecase struct {
	tokens  TokenGenerator
	parser  TokenParser
	revoked RevocationStore
}

var _ jwtmw.SessionResolver = (*sessionUsecase)(nil)

// NewSessionUsecase creates the session usecase.
func NewSessionUsecase(tokens TokenGenerator, parser TokenParser, revoked RevocationStore) *sessionUsecase {
	return &sessionUsecase{tokens: tokens, parser: parser, revoked: revoked}
}

// Issue creates a session token for userID.
func (s *sessionUsecase) Issue(_ context.Context, userID uint) (jwtmw.Issued, error) {
	issued, err := s.tokens.GenerateToken(userID)
	if err != nil {
		return jwtmw.Issued{}, fmt.Errorf("failed to issue session: %w", err)
	}
	return issued, nil
}

// Resolve returns the user id behind token. It fails closed: a bad token or a
// failed revocation lookup both mean no session.
func (s *sessionUsecase) Resolve(ctx context.Context, token string) (uint, bool) {
	claims, err := s.parser.Parse(token)
	if err != nil {
		return 0, false
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		slog.Warn("revocation lookup failed", "error", err)
		return 0, false
	}
	if revoked {
		return 0, false
	}
	uid, err := claims.UserID()
	if err != nil {
		return 0, false
	}
	return uid, true
}

// Destroy revokes token until its expiry. Tokens that no longer verify have
// nothing to revoke.
func (s *sessionUsecase) Destroy(ctx context.Context, token string) error {
	claims, err := s.parser.Parse(token)
	if err != nil {
		return nil
	}
	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
