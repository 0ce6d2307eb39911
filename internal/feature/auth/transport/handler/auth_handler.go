// Package handler provides the HTTP handlers of the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/api"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/transport/http/dto"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/usecase"
	jwtmw "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/jwt"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/apperror"
)

// User-facing messages of the signup and login actions.
const (
	MsgInvalidCredentials = "Credenciales inválidas."
	MsgWrongCredentials   = "Email o password incorrectos."
	MsgInvalidSignup      = "Datos de registro inválidos."
	MsgEmailTaken         = "El email ya está registrado."
	msgInternal           = "internal error"

	homePath = "/"
)

// AuthUsecase defines the account operations used by the handlers.
// Following Go convention: the interface is defined here, by its consumer.
type AuthUsecase interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetProfile(ctx context.Context, requesterID, id uint) (*entity.User, error)
}

// SessionUsecase issues and destroys session tokens.
type SessionUsecase interface {
	Issue(ctx context.Context, userID uint) (jwtmw.Issued, error)
	Destroy(ctx context.Context, token string) error
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler serves signup, login, session and profile endpoints.
type AuthHandler struct {
	auth     AuthUsecase
	sessions SessionUsecase
	cookie   CookieConfig
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth AuthUsecase, sessions SessionUsecase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookie: cookie}
}

func actionError(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.ActionResponse{OK: false, Error: msg})
}

// Signup handles POST /signup. On success the new user is logged in and
// redirected home.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		actionError(c, http.StatusBadRequest, MsgInvalidSignup)
		return
	}
	birth, err := api.ParseISODate(req.FechaNacimiento)
	if err != nil {
		actionError(c, http.StatusBadRequest, MsgInvalidSignup)
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		Nombre:          req.Nombre,
		Email:           req.Email,
		Password:        req.Password,
		FechaNacimiento: birth,
	})
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		slog.Warn("signup failed", "error", err, "remote_addr", c.ClientIP())
		actionError(c, http.StatusConflict, MsgEmailTaken)
		return
	case apperror.IsValidation(err):
		actionError(c, http.StatusBadRequest, err.Error())
		return
	default:
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		actionError(c, http.StatusInternalServerError, msgInternal)
		return
	}

	slog.Info("user signup successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	h.startSession(c, user.ID)
}

// Login handles POST /login. A malformed form never reaches storage.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		actionError(c, http.StatusBadRequest, MsgInvalidCredentials)
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			actionError(c, http.StatusUnauthorized, MsgWrongCredentials)
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		actionError(c, http.StatusInternalServerError, msgInternal)
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	h.startSession(c, user.ID)
}

func (h *AuthHandler) startSession(c *gin.Context, userID uint) {
	issued, err := h.sessions.Issue(c.Request.Context(), userID)
	if err != nil {
		slog.Error("session issue failed", "error", err, "user_id", userID)
		actionError(c, http.StatusInternalServerError, msgInternal)
		return
	}
	h.setCookie(c, issued.Token, int(h.cookie.TTL.Seconds()))
	c.Redirect(http.StatusSeeOther, homePath)
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}

// GetSession handles GET /api/session
func (h *AuthHandler) GetSession(c *gin.Context) {
	var resp dto.SessionResponse
	if uid, ok := jwtmw.UserID(c); ok {
		resp.UserID = &uid
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteSession handles DELETE /api/session. The cookie is cleared even when
// recording the revocation fails.
func (h *AuthHandler) DeleteSession(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.Name)
	h.setCookie(c, "", -1)
	if token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			api.WriteError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, dto.ActionResponse{OK: true})
}

// GetUser handles GET /api/user/:id. Only the session user may read a profile.
func (h *AuthHandler) GetUser(c *gin.Context) {
	requester, ok := jwtmw.UserID(c)
	if !ok {
		api.Unauthorized(c)
		return
	}
	id, err := api.PathUint(c, "id")
	if err != nil {
		api.WriteError(c, err)
		return
	}

	user, err := h.auth.GetProfile(c.Request.Context(), requester, id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.NewProfileResponse(user))
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	default:
		api.WriteError(c, err)
	}
}
