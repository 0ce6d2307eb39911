// Package handler provides the HTTP handlers of the catalog feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/api"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/transport/http/dto"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/usecase"
)

// DefaultRelated is how many related products the detail endpoint returns
// when ?related is absent.
const DefaultRelated = 4

// CatalogUsecase is the subset of the catalog usecase used by the handlers.
type CatalogUsecase interface {
	GetProductWithRelated(ctx context.Context, code string, relatedMax int) (*entity.ProductDetail, error)
	SearchProductsByCategory(ctx context.Context, in usecase.SearchByCategoryInput) (*entity.ProductPage, error)
	ListProducts(ctx context.Context, in usecase.ListInput) (*entity.ProductPage, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
}

// CatalogHandler serves product and category endpoints.
type CatalogHandler struct {
	uc        CatalogUsecase
	mediaBase string
}

// NewCatalogHandler creates a CatalogHandler. mediaBase absolutizes relative image URLs.
func NewCatalogHandler(uc CatalogUsecase, mediaBase string) *CatalogHandler {
	return &CatalogHandler{uc: uc, mediaBase: mediaBase}
}

// ListProducts handles GET /api/productos?search=&page=&pageSize=
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	p, err := api.QueryPage(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	search, err := api.QueryString(c, "search")
	if err != nil {
		api.WriteError(c, err)
		return
	}
	page, err := h.uc.ListProducts(c.Request.Context(), usecase.ListInput{
		Search:   search,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductPageResponse(page, h.mediaBase))
}

// GetProduct handles GET /api/productos/:code?related=n
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	code, err := api.PathString(c, "code")
	if err != nil {
		api.WriteError(c, err)
		return
	}
	related, err := api.QueryInt(c, "related", DefaultRelated)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	d, err := h.uc.GetProductWithRelated(c.Request.Context(), code, related)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProductDetailResponse{
		Product: dto.NewProductResponse(d.Product, h.mediaBase),
		Related: dto.NewProductList(d.Related, h.mediaBase),
	})
}

// ListCategories handles GET /api/categorias
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	cs, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryList(cs))
}

// ProductsByCategory handles GET /api/categorias/:slug/productos?page=&pageSize=
func (h *CatalogHandler) ProductsByCategory(c *gin.Context) {
	p, err := api.QueryPage(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	page, err := h.uc.SearchProductsByCategory(c.Request.Context(), usecase.SearchByCategoryInput{
		Category: c.Param("slug"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductPageResponse(page, h.mediaBase))
}
