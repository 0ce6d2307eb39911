// Package handler provides the HTTP handlers of the cart feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/api"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/transport/http/dto"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/usecase"
	jwtmw "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/jwt"
)

const msgInvalidFields = "missing or invalid required fields"

// CartUsecase is the cart usecase as seen by the handlers.
type CartUsecase interface {
	AddItem(ctx context.Context, userID uint, in usecase.AddItemInput) (uint, error)
	GetCart(ctx context.Context, userID uint) (*entity.CartView, error)
	UpdateLineQuantity(ctx context.Context, userID, cartID, lineID uint, quantity float64) error
	RemoveLine(ctx context.Context, userID, cartID, lineID uint) (bool, error)
}

// CartHandler serves /api/carrito. Requests without a session act on the
// guest cart.
type CartHandler struct {
	uc        CartUsecase
	mediaBase string
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(uc CartUsecase, mediaBase string) *CartHandler {
	return &CartHandler{uc: uc, mediaBase: mediaBase}
}

// GetCart handles GET /api/carrito
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.uc.GetCart(c.Request.Context(), jwtmw.UserIDOrGuest(c))
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(view, h.mediaBase))
}

// AddItem handles POST /api/carrito {code, cantidad}
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, msgInvalidFields)
		return
	}

	cartID, err := h.uc.AddItem(c.Request.Context(), jwtmw.UserIDOrGuest(c), usecase.AddItemInput{
		Code:     req.Code,
		Quantity: *req.Cantidad,
	})
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.AddItemResponse{IDCarrito: cartID})
}

// UpdateLine handles PUT /api/carrito/:id/detalle/:idDetalle {cantidad} and
// returns the refreshed cart.
func (h *CartHandler) UpdateLine(c *gin.Context) {
	cartID, lineID, ok := h.lineParams(c)
	if !ok {
		return
	}
	var req dto.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, msgInvalidFields)
		return
	}

	uid := jwtmw.UserIDOrGuest(c)
	if err := h.uc.UpdateLineQuantity(c.Request.Context(), uid, cartID, lineID, *req.Cantidad); err != nil {
		api.WriteError(c, err)
		return
	}
	view, err := h.uc.GetCart(c.Request.Context(), uid)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(view, h.mediaBase))
}

// RemoveLine handles DELETE /api/carrito/:id/detalle/:idDetalle
func (h *CartHandler) RemoveLine(c *gin.Context) {
	cartID, lineID, ok := h.lineParams(c)
	if !ok {
		return
	}
	deleted, err := h.uc.RemoveLine(c.Request.Context(), jwtmw.UserIDOrGuest(c), cartID, lineID)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RemoveLineResponse{CarritoEliminado: deleted})
}

func (h *CartHandler) lineParams(c *gin.Context) (cartID, lineID uint, ok bool) {
	cartID, err := api.PathUint(c, "id")
	if err != nil {
		api.WriteError(c, err)
		return 0, 0, false
	}
	lineID, err = api.PathUint(c, "idDetalle")
	if err != nil {
		api.WriteError(c, err)
		return 0, 0, false
	}
	return cartID, lineID, true
}
