// Package usecase implements product resolution and catalog browsing.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/apperror"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 12
	MaxPageSize     = 100

	// relatedFetchSize bounds the related-products query before truncation.
	relatedFetchSize = 100
)

// ShadowRepository persists local product shadows.
// Following Go convention: the interface is defined here, by its consumer.
type ShadowRepository interface {
	FindByCode(ctx context.Context, code string) (*entity.ProductShadow, error)
	// UpsertByDocumentID inserts s or, when the document id exists, updates its code.
	UpsertByDocumentID(ctx context.Context, s *entity.ProductShadow) error
}

// ProductSource reads catalog data from the content service. Lookups return
// nil without error when nothing matches.
type ProductSource interface {
	FindRefByCode(ctx context.Context, code string) (*entity.ProductRef, error)
	FindByDocumentID(ctx context.Context, documentID string) (*entity.Product, error)
	FindByCategory(ctx context.Context, slug, excludeCode string, page, pageSize int) (*entity.ProductPage, error)
	List(ctx context.Context, search string, page, pageSize int) (*entity.ProductPage, error)
	ListCodes(ctx context.Context, page, pageSize int) ([]string, entity.Pagination, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
}

// SearchByCategoryInput selects one page of a category.
type SearchByCategoryInput struct {
	Category string
	Page     int
	PageSize int
}

// ListInput selects one page of the catalog, optionally filtered by search text.
type ListInput struct {
	Search   string
	Page     int
	PageSize int
}

type catalogUsecase struct {
	shadows  ShadowRepository
	products ProductSource
}

// NewCatalogUsecase creates a catalog usecase.
func NewCatalogUsecase(shadows ShadowRepository, products ProductSource) *catalogUsecase {
	return &catalogUsecase{shadows: shadows, products: products}
}

// EnsureProductExistsByCode makes sure a local shadow exists for code,
// creating it from the content service when missing.
func (u *catalogUsecase) EnsureProductExistsByCode(ctx context.Context, code string) (*entity.ProductShadow, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperror.Validation("product code is required")
	}

	s, err := u.shadows.FindByCode(ctx, code)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrShadowNotFound) {
		return nil, fmt.Errorf("find shadow %s: %w", code, err)
	}

	ref, err := u.products.FindRefByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("lookup product %s: %w", code, err)
	}
	if ref == nil {
		return nil, apperror.NotFound("product %s not found", code)
	}
	if ref.Code == "" || ref.DocumentID == "" {
		return nil, apperror.Validation("product %s is missing code or documentId", code)
	}

	s = &entity.ProductShadow{Code: ref.Code, DocumentID: ref.DocumentID}
	if err := u.shadows.UpsertByDocumentID(ctx, s); err != nil {
		return nil, fmt.Errorf("upsert shadow %s: %w", code, err)
	}
	slog.Info("product shadow created", "code", s.Code, "document_id", s.DocumentID)
	return s, nil
}

// EnsureAndGetByCode ensures the shadow exists and returns the full product.
func (u *catalogUsecase) EnsureAndGetByCode(ctx context.Context, code string) (*entity.Product, error) {
	s, err := u.EnsureProductExistsByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	p, err := u.products.FindByDocumentID(ctx, s.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", s.DocumentID, err)
	}
	if p == nil {
		return nil, apperror.NotFound("product %s not found", code)
	}
	return p, nil
}

// GetProductWithRelated returns the product for code plus up to relatedMax
// products of the same category.
func (u *catalogUsecase) GetProductWithRelated(ctx context.Context, code string, relatedMax int) (*entity.ProductDetail, error) {
	p, err := u.EnsureAndGetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	detail := &entity.ProductDetail{Product: *p, Related: []entity.Product{}}
	if relatedMax <= 0 || p.Category == nil || p.Category.Slug == "" {
		return detail, nil
	}

	page, err := u.products.FindByCategory(ctx, p.Category.Slug, p.Code, 1, relatedFetchSize)
	if err != nil {
		return nil, fmt.Errorf("related products for %s: %w", p.Code, err)
	}
	if page != nil {
		related := page.Data
		if len(related) > relatedMax {
			related = related[:relatedMax]
		}
		detail.Related = append(detail.Related, related...)
	}
	return detail, nil
}

// SearchProductsByCategory returns one page of a category as the content
// service returned it.
func (u *catalogUsecase) SearchProductsByCategory(ctx context.Context, in SearchByCategoryInput) (*entity.ProductPage, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, apperror.Validation("category is required")
	}
	page, size := NormalizePage(in.Page, in.PageSize)

	res, err := u.products.FindByCategory(ctx, category, "", page, size)
	if err != nil {
		return nil, fmt.Errorf("search category %s: %w", category, err)
	}
	if res == nil || len(res.Data) == 0 {
		return nil, apperror.NotFound("no products found for category %s", category)
	}
	return res, nil
}

// ListProducts returns one page of the catalog. An empty catalog is an empty
// page, but asking past the last page is NotFound.
func (u *catalogUsecase) ListProducts(ctx context.Context, in ListInput) (*entity.ProductPage, error) {
	page, size := NormalizePage(in.Page, in.PageSize)

	res, err := u.products.List(ctx, strings.TrimSpace(in.Search), page, size)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if res == nil {
		res = &entity.ProductPage{}
	}
	if res.Data == nil {
		res.Data = []entity.Product{}
	}
	if page > 1 && page > res.Meta.Pagination.PageCount {
		return nil, apperror.NotFound("page out of range")
	}
	return res, nil
}

// ListCategories returns every category.
func (u *catalogUsecase) ListCategories(ctx context.Context) ([]entity.Category, error) {
	cs, err := u.products.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if cs == nil {
		cs = []entity.Category{}
	}
	return cs, nil
}

// ListCodes returns one page of live product codes.
func (u *catalogUsecase) ListCodes(ctx context.Context, page, pageSize int) ([]string, entity.Pagination, error) {
	page, pageSize = NormalizePage(page, pageSize)
	return u.products.ListCodes(ctx, page, pageSize)
}

// NormalizePage applies defaults and the page size cap.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
