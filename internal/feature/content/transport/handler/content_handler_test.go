package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/transport/handler"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/apperror"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/media"
)

type mockContentUsecase struct {
	ListArticlesFunc     func(ctx context.Context, page, pageSize int) (*entity.ArticlePage, error)
	GetArticleBySlugFunc func(ctx context.Context, slug string) (*entity.Article, error)
	GetBrandFunc         func(ctx context.Context) (*entity.Brand, error)
}

func (m *mockContentUsecase) ListArticles(ctx context.Context, page, pageSize int) (*entity.ArticlePage, error) {
	return m.ListArticlesFunc(ctx, page, pageSize)
}

func (m *mockContentUsecase) GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	return m.GetArticleBySlugFunc(ctx, slug)
}

func (m *mockContentUsecase) GetBrand(ctx context.Context) (*entity.Brand, error) {
	return m.GetBrandFunc(ctx)
}

func newRouter(uc handler.ContentUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewContentHandler(uc, "https://cms.milsabores.cl")
	r := gin.New()
	r.GET("/api/articulos", h.ListArticles)
	r.GET("/api/articulos/:slug", h.GetArticle)
	r.GET("/api/marca", h.GetBrand)
	return r
}

func get(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

var published = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

func summer() entity.Article {
	return entity.Article{
		DocumentID:  "a1",
		Title:       "Tortas de verano",
		Slug:        "tortas-de-verano",
		Summary:     "Frescas",
		Content:     json.RawMessage(`[{"type":"paragraph"}]`),
		Cover:       media.FromURL("/uploads/cover.jpg"),
		PublishedAt: &published,
	}
}

func TestContentHandler_ListArticles(t *testing.T) {
	uc := &mockContentUsecase{
		ListArticlesFunc: func(_ context.Context, page, pageSize int) (*entity.ArticlePage, error) {
			if page == 9 {
				return nil, apperror.NotFound("page out of range")
			}
			assert.Equal(t, 2, page)
			assert.Equal(t, 6, pageSize)
			return &entity.ArticlePage{
				Data:       []entity.Article{summer()},
				Pagination: entity.Pagination{Page: 2, PageSize: 6, PageCount: 2, Total: 7},
			}, nil
		},
	}

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "page without content body",
			url:            "/api/articulos?page=2&pageSize=6",
			expectedStatus: http.StatusOK,
			expectedBody: `{"data":[{"documentId":"a1","title":"Tortas de verano","slug":"tortas-de-verano","summary":"Frescas",
				"coverUrl":"https://cms.milsabores.cl/uploads/cover.jpg","publishedAt":"2026-02-01T10:00:00Z"}],
				"meta":{"pagination":{"page":2,"pageSize":6,"pageCount":2,"total":7}}}`,
		},
		{name: "out of range", url: "/api/articulos?page=9", expectedStatus: http.StatusNotFound, expectedBody: `{"error":"page out of range"}`},
		{name: "invalid page", url: "/api/articulos?page=abc", expectedStatus: http.StatusBadRequest, expectedBody: `{"error":"invalid query parameter page"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newRouter(uc), tt.url)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestContentHandler_GetArticle(t *testing.T) {
	uc := &mockContentUsecase{
		GetArticleBySlugFunc: func(_ context.Context, slug string) (*entity.Article, error) {
			switch slug {
			case "tortas-de-verano":
				a := summer()
				return &a, nil
			case "boom":
				return nil, errors.New("timeout")
			}
			return nil, apperror.NotFound("article %q not found", slug)
		},
	}

	w := get(newRouter(uc), "/api/articulos/tortas-de-verano")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"content":[{"type":"paragraph"}]`)

	w = get(newRouter(uc), "/api/articulos/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(newRouter(uc), "/api/articulos/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestContentHandler_GetBrand(t *testing.T) {
	uc := &mockContentUsecase{
		GetBrandFunc: func(context.Context) (*entity.Brand, error) {
			return &entity.Brand{Name: "Pastelería Mil Sabores", Slogan: "50 años", ContactEmail: "hola@milsabores.cl", Phone: "+56 2 2345 6789"}, nil
		},
	}

	w := get(newRouter(uc), "/api/marca")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Pastelería Mil Sabores","slogan":"50 años","logoUrl":"/img/placeholder-producto.png",
		"contactEmail":"hola@milsabores.cl","phone":"+56 2 2345 6789"}`, w.Body.String())
}
