// Package entity defines the domain entities for the address feature.
package entity

import (
	"strings"
	"time"
)

// Region is a Chilean administrative region. Regions are reference data seeded
// at migration time.
type Region struct {
	ID     uint   `gorm:"column:id_region;primaryKey;autoIncrement:false"`
	Nombre string `gorm:"column:nombre;size:100;not null;uniqueIndex"`

	// Orden sorts regions north to south.
	Orden int `gorm:"column:orden;not null;default:0"`

	Comunas []Comuna `gorm:"foreignKey:RegionID;references:ID"`
}

// TableName maps Region to the region table.
func (Region) TableName() string { return "region" }

// Comuna is a municipality inside a Region.
type Comuna struct {
	ID       uint   `gorm:"column:id_comuna;primaryKey;autoIncrement:false"`
	Nombre   string `gorm:"column:nombre;size:100;not null"`
	RegionID uint   `gorm:"column:id_region_fk;not null;index"`
}

// TableName maps Comuna to the comuna table.
func (Comuna) TableName() string { return "comuna" }

// Address is a delivery address owned by one user.
type Address struct {
	ID           uint    `gorm:"column:id_direccion;primaryKey"`
	Calle        string  `gorm:"column:calle;size:200;not null"`
	Numero       string  `gorm:"column:numero;size:20;not null"`
	Departamento *string `gorm:"column:departamento;size:50"`
	ComunaID     uint    `gorm:"column:id_comuna_fk;not null;index"`
	UserID       uint    `gorm:"column:usuario_id_usuario;not null;index"`

	Comuna *Comuna `gorm:"foreignKey:ComunaID;references:ID"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName maps Address to the direccion table.
func (Address) TableName() string { return "direccion" }

// Unit returns the apartment or unit, or "" when there is none.
func (a Address) Unit() string {
	if a.Departamento == nil {
		return ""
	}
	return *a.Departamento
}

// SamePlace reports whether a and b denote the same address: street, number,
// unit and comuna compared trimmed and case-insensitively. A missing unit
// equals an empty one.
func (a Address) SamePlace(b Address) bool {
	return a.ComunaID == b.ComunaID &&
		fold(a.Calle) == fold(b.Calle) &&
		fold(a.Numero) == fold(b.Numero) &&
		fold(a.Unit()) == fold(b.Unit())
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
