// Package dto defines the JSON shapes of the cart endpoints.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/domain/entity"
	catalogdto "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/transport/http/dto"
)

// AddItemRequest is the body of POST /api/carrito.
type AddItemRequest struct {
	Code     string   `json:"code" binding:"required,notblank"`
	Cantidad *float64 `json:"cantidad" binding:"required"`
}

// UpdateLineRequest is the body of PUT /api/carrito/:id/detalle/:idDetalle.
type UpdateLineRequest struct {
	Cantidad *float64 `json:"cantidad" binding:"required"`
}

type AddItemResponse struct {
	IDCarrito uint `json:"idCarrito"`
}

type RemoveLineResponse struct {
	CarritoEliminado bool `json:"carritoEliminado"`
}

type LineResponse struct {
	IDCarritoDetalle uint                        `json:"idCarritoDetalle"`
	IDProducto       string                      `json:"idProducto"`
	Cantidad         int                         `json:"cantidad"`
	NombreProducto   string                      `json:"nombreProducto"`
	PrecioUnitario   decimal.Decimal             `json:"precioUnitario"`
	Subtotal         decimal.Decimal             `json:"subtotal"`
	Imagen           string                      `json:"imagen,omitempty"`
	Producto         *catalogdto.ProductResponse `json:"producto,omitempty"`
}

type CartResponse struct {
	IDCarrito     uint            `json:"idCarrito"`
	IDUsuario     uint            `json:"idUsuario"`
	Detalle       []LineResponse  `json:"detalle"`
	Total         decimal.Decimal `json:"total"`
	CantidadTotal int             `json:"cantidadTotal"`
}

// NewCartResponse maps a cart view. mediaBase absolutizes product images.
func NewCartResponse(v *entity.CartView, mediaBase string) CartResponse {
	lines := make([]LineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		lr := LineResponse{
			IDCarritoDetalle: l.LineID,
			IDProducto:       l.Code,
			Cantidad:         l.Quantity,
			NombreProducto:   l.Name,
			PrecioUnitario:   l.UnitPrice,
			Subtotal:         l.Subtotal,
			Imagen:           l.ImageURL,
		}
		if l.Product != nil {
			p := catalogdto.NewProductResponse(*l.Product, mediaBase)
			lr.Producto = &p
		}
		lines = append(lines, lr)
	}
	return CartResponse{
		IDCarrito:     v.CartID,
		IDUsuario:     v.UserID,
		Detalle:       lines,
		Total:         v.Total,
		CantidadTotal: v.TotalQuantity,
	}
}
