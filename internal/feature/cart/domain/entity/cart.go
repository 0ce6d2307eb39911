// Package entity defines the cart domain types.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	catalog "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/domain/entity"
)

// Cart belongs to exactly one user. It only exists while it has lines.
type Cart struct {
	ID        uint       `gorm:"column:id_carrito;primaryKey;autoIncrement"`
	UserID    uint       `gorm:"column:id_usuario_fk;not null;uniqueIndex"`
	Lines     []CartLine `gorm:"foreignKey:CartID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the table name.
func (Cart) TableName() string { return "carrito" }

// CartLine holds a quantity of one product plus the name and price captured
// when the line was created.
type CartLine struct {
	ID          uint            `gorm:"column:id_carrito_detalle;primaryKey;autoIncrement"`
	CartID      uint            `gorm:"column:id_carrito;not null;uniqueIndex:ux_carrito_producto,priority:1"`
	ProductCode string          `gorm:"column:id_producto;size:64;not null;uniqueIndex:ux_carrito_producto,priority:2"`
	Quantity    int             `gorm:"column:cantidad;not null"`
	ProductName string          `gorm:"column:nombre_producto;size:255;not null"`
	UnitPrice   decimal.Decimal `gorm:"column:precio_unitario;type:decimal(10,2);not null"`
}

// TableName pins the table name.
func (CartLine) TableName() string { return "carrito_detalle" }

// LineView is a cart line as shown to the shopper. Product is nil when the
// live product could not be resolved and the snapshot is shown instead.
type LineView struct {
	LineID    uint
	Code      string
	Quantity  int
	Name      string
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	ImageURL  string
	Product   *catalog.Product
}

// Live reports whether the line was enriched from the content service.
func (l LineView) Live() bool { return l.Product != nil }

// CartView is the enriched cart. CartID is 0 when the user has no cart.
type CartView struct {
	CartID        uint
	UserID        uint
	Lines         []LineView
	Total         decimal.Decimal
	TotalQuantity int
}
