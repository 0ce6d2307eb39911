// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User is a registered storefront customer.
type User struct {
	ID uint `gorm:"column:id_usuario;primaryKey"`

	Nombre string `gorm:"column:nombre;size:120;not null"`

	// Email is stored lowercased and must be unique.
	Email string `gorm:"column:email;uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash. Plaintext is never stored.
	Password string `gorm:"column:password;size:255;not null"`

	FechaNacimiento time.Time `gorm:"column:fecha_nacimiento;type:date;not null"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName maps User to the usuario table.
func (User) TableName() string { return "usuario" }

// RevokedSession records a logged-out session token until it would have expired.
type RevokedSession struct {
	TokenID   string    `gorm:"column:jti;primaryKey;size:64"`
	ExpiresAt time.Time `gorm:"column:expires_at;index;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName maps RevokedSession to the sesion_revocada table.
func (RevokedSession) TableName() string { return "sesion_revocada" }
