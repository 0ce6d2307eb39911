package jwtmw

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/api"
)

const (
	// ContextUserID is the gin context key holding the session user id.
	ContextUserID = "userID"

	// GuestUserID is the user id carts fall back to when no session exists.
	GuestUserID uint = 1
)

// SessionResolver maps a raw token to a user id. ok is false whenever the
// token cannot be trusted.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (userID uint, ok bool)
}

// Session reads the session cookie and stores the resolved user id in the
// context. It never aborts: routes that need a session add AuthRequired.
func Session(cookieName string, resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err == nil && token != "" {
			if uid, ok := resolver.Resolve(c.Request.Context(), token); ok {
				c.Set(ContextUserID, uid)
			}
		}
		c.Next()
	}
}

// AuthRequired aborts with 401 unless Session resolved a user.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			api.Unauthorized(c)
			return
		}
		c.Next()
	}
}

// UserID returns the session user id, if any.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	uid, ok := v.(uint)
	return uid, ok && uid != 0
}

// UserIDOrGuest returns the session user id or GuestUserID.
func UserIDOrGuest(c *gin.Context) uint {
	if uid, ok := UserID(c); ok {
		return uid
	}
	return GuestUserID
}
