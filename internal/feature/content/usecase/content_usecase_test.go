package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/apperror"
)

type mockContentSource struct {
	ListArticlesFunc      func(ctx context.Context, page, pageSize int) (*entity.ArticlePage, error)
	FindArticleBySlugFunc func(ctx context.Context, slug string) (*entity.Article, error)
	GetBrandFunc          func(ctx context.Context) (*entity.Brand, error)
}

func (m *mockContentSource) ListArticles(ctx context.Context, page, pageSize int) (*entity.ArticlePage, error) {
	return m.ListArticlesFunc(ctx, page, pageSize)
}

func (m *mockContentSource) FindArticleBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	return m.FindArticleBySlugFunc(ctx, slug)
}

func (m *mockContentSource) GetBrand(ctx context.Context) (*entity.Brand, error) {
	return m.GetBrandFunc(ctx)
}

func TestContentUsecase_ListArticles(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		page, size   int
		wantPage     int
		wantSize     int
		pageCount    int
		wantNotFound bool
	}{
		{name: "defaults", page: 0, size: 0, wantPage: 1, wantSize: DefaultPageSize, pageCount: 0},
		{name: "size is capped", page: 1, size: 500, wantPage: 1, wantSize: MaxPageSize, pageCount: 1},
		{name: "last page", page: 3, size: 6, wantPage: 3, wantSize: 6, pageCount: 3},
		{name: "past the last page", page: 4, size: 6, wantPage: 4, wantSize: 6, pageCount: 3, wantNotFound: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &mockContentSource{
				ListArticlesFunc: func(_ context.Context, page, pageSize int) (*entity.ArticlePage, error) {
					assert.Equal(t, tt.wantPage, page)
					assert.Equal(t, tt.wantSize, pageSize)
					return &entity.ArticlePage{Pagination: entity.Pagination{Page: page, PageSize: pageSize, PageCount: tt.pageCount}}, nil
				},
			}

			res, err := NewContentUsecase(src).ListArticles(ctx, tt.page, tt.size)

			if tt.wantNotFound {
				assert.True(t, apperror.IsNotFound(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, res.Data, "empty page must be an empty list")
		})
	}

	t.Run("upstream failure", func(t *testing.T) {
		src := &mockContentSource{
			ListArticlesFunc: func(context.Context, int, int) (*entity.ArticlePage, error) { return nil, errors.New("timeout") },
		}
		_, err := NewContentUsecase(src).ListArticles(ctx, 1, 6)
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestContentUsecase_GetArticleBySlug(t *testing.T) {
	ctx := context.Background()
	src := &mockContentSource{
		FindArticleBySlugFunc: func(_ context.Context, slug string) (*entity.Article, error) {
			switch slug {
			case "tortas-de-verano":
				return &entity.Article{Slug: slug, Title: "Tortas de verano"}, nil
			case "boom":
				return nil, errors.New("timeout")
			default:
				return nil, nil
			}
		},
	}
	uc := NewContentUsecase(src)

	a, err := uc.GetArticleBySlug(ctx, " tortas-de-verano ")
	require.NoError(t, err)
	assert.Equal(t, "Tortas de verano", a.Title)

	_, err = uc.GetArticleBySlug(ctx, "  ")
	assert.True(t, apperror.IsValidation(err))

	_, err = uc.GetArticleBySlug(ctx, "nope")
	assert.True(t, apperror.IsNotFound(err))

	_, err = uc.GetArticleBySlug(ctx, "boom")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestContentUsecase_GetBrand(t *testing.T) {
	ctx := context.Background()

	b, err := NewContentUsecase(&mockContentSource{
		GetBrandFunc: func(context.Context) (*entity.Brand, error) { return &entity.Brand{Name: "Mil Sabores"}, nil },
	}).GetBrand(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mil Sabores", b.Name)

	_, err = NewContentUsecase(&mockContentSource{
		GetBrandFunc: func(context.Context) (*entity.Brand, error) { return nil, nil },
	}).GetBrand(ctx)
	assert.True(t, apperror.IsNotFound(err))
}
