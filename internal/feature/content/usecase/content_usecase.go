package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/apperror"
)

const (
	DefaultPageSize = 6
	MaxPageSize     = 50
)

// ContentSource reads editorial content. Lookups that match nothing return nil, nil.
// Following Go convention: the interface is defined here, by its consumer.
type ContentSource interface {
	ListArticles(ctx context.Context, page, pageSize int) (*entity.ArticlePage, error)
	FindArticleBySlug(ctx context.Context, slug string) (*entity.Article, error)
	GetBrand(ctx context.Context) (*entity.Brand, error)
}

type contentUsecase struct {
	source ContentSource
}

// NewContentUsecase creates the content usecase.
func NewContentUsecase(source ContentSource) *contentUsecase {
	return &contentUsecase{source: source}
}

// ListArticles returns a page of articles. A page past the last one is NotFound,
// except page 1 which is always an empty list.
func (u *contentUsecase) ListArticles(ctx context.Context, page, pageSize int) (*entity.ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pageSize = min(pageSize, MaxPageSize)

	res, err := u.source.ListArticles(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: list articles: %w", ErrUpstream, err)
	}
	if res == nil {
		res = &entity.ArticlePage{}
	}
	if res.Data == nil {
		res.Data = []entity.Article{}
	}
	if page > 1 && page > res.Pagination.PageCount {
		return nil, apperror.NotFound("page out of range")
	}
	return res, nil
}

// GetArticleBySlug returns the article with slug.
func (u *contentUsecase) GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperror.Validation("slug is required")
	}
	a, err := u.source.FindArticleBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%w: article %q: %w", ErrUpstream, slug, err)
	}
	if a == nil {
		return nil, apperror.NotFound("article %q not found", slug)
	}
	return a, nil
}

// GetBrand returns the brand settings.
func (u *contentUsecase) GetBrand(ctx context.Context) (*entity.Brand, error) {
	b, err := u.source.GetBrand(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: brand: %w", ErrUpstream, err)
	}
	if b == nil {
		return nil, apperror.NotFound("brand not configured")
	}
	return b, nil
}
