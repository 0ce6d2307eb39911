package dto

import (
	"time"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/api"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/domain/entity"
)

// ActionResponse is the body of a failed signup or login.
type ActionResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// SessionResponse reports the session user; UserID is null without a session.
type SessionResponse struct {
	UserID *uint `json:"userId"`
}

// ProfileResponse is the public view of a user.
type ProfileResponse struct {
	IDUsuario       uint      `json:"idUsuario"`
	Nombre          string    `json:"nombre"`
	Email           string    `json:"email"`
	FechaNacimiento string    `json:"fechaNacimiento"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewProfileResponse converts u, dropping the password hash.
func NewProfileResponse(u *entity.User) ProfileResponse {
	return ProfileResponse{
		IDUsuario:       u.ID,
		Nombre:          u.Nombre,
		Email:           u.Email,
		FechaNacimiento: u.FechaNacimiento.Format(api.DateLayout),
		CreatedAt:       u.CreatedAt,
	}
}
