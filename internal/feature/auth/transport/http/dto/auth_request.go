// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// LoginReq is the /login form. It binds from JSON or from an urlencoded form.
type LoginReq struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// SignupReq is the /signup form. FechaNacimiento is a YYYY-MM-DD date.
type SignupReq struct {
	Nombre          string `form:"nombre" json:"nombre" binding:"required,notblank,max=120"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Password        string `form:"password" json:"password" binding:"required,min=8,max=72"`
	FechaNacimiento string `form:"fechaNacimiento" json:"fechaNacimiento" binding:"required,isodate"`
}
