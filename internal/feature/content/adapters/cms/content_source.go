// Package cms reads articles and brand data from the content service.
package cms

import (
	"context"
	"net/http"
	"time"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/usecase"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/contentapi"
)

const (
	articlesPath = "/api/articles"
	brandPath    = "/api/brand"

	articlesRevalidate = 60 * time.Second
	brandRevalidate    = 300 * time.Second
)

type contentSource struct {
	client *contentapi.Client
}

var _ usecase.ContentSource = (*contentSource)(nil)

// NewContentSource creates a ContentSource backed by client.
func NewContentSource(client *contentapi.Client) *contentSource {
	return &contentSource{client: client}
}

// ListArticles lists live articles, newest first.
func (s *contentSource) ListArticles(ctx context.Context, page, pageSize int) (*entity.ArticlePage, error) {
	res, err := contentapi.Get[contentapi.Collection[entity.Article]](ctx, s.client, articlesPath, contentapi.RequestOptions{
		Query: contentapi.Query{
			"populate[0]":          "cover",
			"pagination[page]":     page,
			"pagination[pageSize]": pageSize,
			"publicationState":     "live",
			"sort[0]":              "publishedAt:desc",
		},
		Revalidate: articlesRevalidate,
	})
	if err != nil {
		return nil, err
	}
	out := &entity.ArticlePage{Data: res.Data}
	if p := res.Meta.Pagination; p != nil {
		out.Pagination = entity.Pagination{Page: p.Page, PageSize: p.PageSize, PageCount: p.PageCount, Total: p.Total}
	}
	return out, nil
}

// FindArticleBySlug returns nil when no live article has slug.
func (s *contentSource) FindArticleBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	res, err := contentapi.Get[contentapi.Collection[entity.Article]](ctx, s.client, articlesPath, contentapi.RequestOptions{
		Query: contentapi.Query{
			"filters[slug][$eq]":   slug,
			"populate[0]":          "cover",
			"pagination[pageSize]": 1,
			"publicationState":     "live",
		},
		Revalidate: articlesRevalidate,
	})
	if err != nil {
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, nil
	}
	a := res.Data[0]
	return &a, nil
}

// GetBrand returns nil when the brand single type has not been published.
func (s *contentSource) GetBrand(ctx context.Context) (*entity.Brand, error) {
	res, err := contentapi.Get[contentapi.Single[entity.Brand]](ctx, s.client, brandPath, contentapi.RequestOptions{
		Query:      contentapi.Query{"populate[0]": "logo"},
		Revalidate: brandRevalidate,
	})
	if err != nil {
		if contentapi.IsStatus(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return res.Data, nil
}
