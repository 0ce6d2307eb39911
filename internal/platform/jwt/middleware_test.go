package jwtmw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockResolver is a function-field SessionResolver.
type mockResolver struct {
	ResolveFunc func(ctx context.Context, token string) (uint, bool)
}

func (m *mockResolver) Resolve(ctx context.Context, token string) (uint, bool) {
	return m.ResolveFunc(ctx, token)
}

func TestSession(t *testing.T) {
	t.Parallel()

	resolver := &mockResolver{ResolveFunc: func(_ context.Context, token string) (uint, bool) {
		if token == "good" {
			return 9, true
		}
		return 0, false
	}}

	tests := []struct {
		name      string
		cookie    *http.Cookie
		wantUID   uint
		wantFound bool
	}{
		{"no cookie", nil, 0, false},
		{"valid cookie", &http.Cookie{Name: "sess", Value: "good"}, 9, true},
		{"invalid cookie", &http.Cookie{Name: "sess", Value: "bad"}, 0, false},
		{"other cookie name", &http.Cookie{Name: "other", Value: "good"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				c.Request.AddCookie(tt.cookie)
			}

			Session("sess", resolver)(c)

			assert.False(t, c.IsAborted())
			uid, ok := UserID(c)
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.wantUID, uid)
		})
	}
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()

	t.Run("no session", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		AuthRequired()(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"authentication required"}`, w.Body.String())
		assert.True(t, c.IsAborted())
	})

	t.Run("with session", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set(ContextUserID, uint(3))

		AuthRequired()(c)

		assert.False(t, c.IsAborted())
	})
}

func TestUserIDOrGuest(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, GuestUserID, UserIDOrGuest(c))

	c.Set(ContextUserID, uint(12))
	assert.Equal(t, uint(12), UserIDOrGuest(c))

	c.Set(ContextUserID, "not-a-uint")
	assert.Equal(t, GuestUserID, UserIDOrGuest(c))
}
