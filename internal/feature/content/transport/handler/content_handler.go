// Package handler provides the HTTP handlers of the content feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/api"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/transport/http/dto"
)

// ContentUsecase defines the content operations used by the handlers.
type ContentUsecase interface {
	ListArticles(ctx context.Context, page, pageSize int) (*entity.ArticlePage, error)
	GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error)
	GetBrand(ctx context.Context) (*entity.Brand, error)
}

type ContentHandler struct {
	uc        ContentUsecase
	mediaBase string
}

// NewContentHandler creates a ContentHandler resolving media against mediaBase.
func NewContentHandler(uc ContentUsecase, mediaBase string) *ContentHandler {
	return &ContentHandler{uc: uc, mediaBase: mediaBase}
}

// ListArticles handles GET /api/articulos?page=&pageSize=
func (h *ContentHandler) ListArticles(c *gin.Context) {
	p, err := api.QueryPage(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	page, err := h.uc.ListArticles(c.Request.Context(), p.Page, p.PageSize)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewArticlePageResponse(page, h.mediaBase))
}

// GetArticle handles GET /api/articulos/:slug
func (h *ContentHandler) GetArticle(c *gin.Context) {
	slug, err := api.PathString(c, "slug")
	if err != nil {
		api.WriteError(c, err)
		return
	}
	a, err := h.uc.GetArticleBySlug(c.Request.Context(), slug)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewArticleResponse(*a, h.mediaBase, true))
}

// GetBrand handles GET /api/marca
func (h *ContentHandler) GetBrand(c *gin.Context) {
	b, err := h.uc.GetBrand(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBrandResponse(b, h.mediaBase))
}
