// Package handler provides the HTTP handlers of the address feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/api"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/address/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/address/transport/http/dto"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/address/usecase"
	jwtmw "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/jwt"
)

const msgInvalidAddress = "missing or invalid address fields"

// AddressUsecase defines the address operations used by the handlers.
type AddressUsecase interface {
	ListRegions(ctx context.Context) ([]entity.Region, error)
	List(ctx context.Context, userID uint) ([]entity.Address, error)
	Create(ctx context.Context, userID uint, in usecase.AddressInput) (*entity.Address, error)
	Update(ctx context.Context, userID, id uint, in usecase.AddressInput) (*entity.Address, error)
	Delete(ctx context.Context, userID, id uint) error
}

// AddressHandler serves /api/regiones and /api/direcciones. The address
// routes sit behind jwtmw.AuthRequired.
type AddressHandler struct {
	uc AddressUsecase
}

// NewAddressHandler creates an AddressHandler.
func NewAddressHandler(uc AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// ListRegions handles GET /api/regiones
func (h *AddressHandler) ListRegions(c *gin.Context) {
	regions, err := h.uc.ListRegions(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRegionList(regions))
}

// List handles GET /api/direcciones
func (h *AddressHandler) List(c *gin.Context) {
	uid, ok := h.user(c)
	if !ok {
		return
	}
	addrs, err := h.uc.List(c.Request.Context(), uid)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAddressList(addrs))
}

// Create handles POST /api/direcciones
func (h *AddressHandler) Create(c *gin.Context) {
	uid, ok := h.user(c)
	if !ok {
		return
	}
	in, ok := bindAddress(c)
	if !ok {
		return
	}
	addr, err := h.uc.Create(c.Request.Context(), uid, in)
	if err != nil {
		writeAddressError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAddressResponse(*addr))
}

// Update handles PUT /api/direcciones/:id
func (h *AddressHandler) Update(c *gin.Context) {
	uid, ok := h.user(c)
	if !ok {
		return
	}
	id, err := api.PathUint(c, "id")
	if err != nil {
		api.WriteError(c, err)
		return
	}
	in, ok := bindAddress(c)
	if !ok {
		return
	}
	addr, err := h.uc.Update(c.Request.Context(), uid, id, in)
	if err != nil {
		writeAddressError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAddressResponse(*addr))
}

// Delete handles DELETE /api/direcciones/:id
func (h *AddressHandler) Delete(c *gin.Context) {
	uid, ok := h.user(c)
	if !ok {
		return
	}
	id, err := api.PathUint(c, "id")
	if err != nil {
		api.WriteError(c, err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), uid, id); err != nil {
		api.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AddressHandler) user(c *gin.Context) (uint, bool) {
	uid, ok := jwtmw.UserID(c)
	if !ok {
		api.Unauthorized(c)
	}
	return uid, ok
}

func bindAddress(c *gin.Context) (usecase.AddressInput, bool) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, msgInvalidAddress)
		return usecase.AddressInput{}, false
	}
	return usecase.AddressInput{
		Calle:        req.Calle,
		Numero:       req.Numero,
		Departamento: req.Departamento,
		ComunaID:     req.IDComuna,
	}, true
}

func writeAddressError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrDuplicateAddress) {
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		return
	}
	api.WriteError(c, err)
}
