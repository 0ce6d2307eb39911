// Package cms reads catalog data from the content service.
package cms

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/usecase"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/contentapi"
)

const (
	// ProductsPath and CategoriesPath are the content-service collections read here.
	ProductsPath   = "/api/products"
	CategoriesPath = "/api/categories"

	// categoriesRevalidate is how long the category list may be served from cache.
	categoriesRevalidate = 300 * time.Second
)

var (
	// productFields are the scalar attributes entity.Product decodes; nothing
	// else is requested.
	productFields   = []string{"documentId", "code", "name", "price", "description"}
	productPopulate = []string{"images", "category"}
)

type productSource struct {
	client *contentapi.Client
}

var _ usecase.ProductSource = (*productSource)(nil)

// NewProductSource creates a ProductSource backed by client.
func NewProductSource(client *contentapi.Client) *productSource {
	return &productSource{client: client}
}

// FindRefByCode fetches only documentId and code of the live product with code.
func (s *productSource) FindRefByCode(ctx context.Context, code string) (*entity.ProductRef, error) {
	res, err := contentapi.Get[contentapi.Collection[entity.ProductRef]](ctx, s.client, ProductsPath, contentapi.RequestOptions{
		Query: contentapi.Query{
			"filters[code][$eq]":   code,
			"fields[0]":            "documentId",
			"fields[1]":            "code",
			"pagination[pageSize]": 1,
			"publicationState":     "live",
		},
	})
	if err != nil {
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, nil
	}
	ref := res.Data[0]
	return &ref, nil
}

// FindByDocumentID fetches the full product. A 404 is reported as nil.
func (s *productSource) FindByDocumentID(ctx context.Context, documentID string) (*entity.Product, error) {
	res, err := contentapi.Get[contentapi.Single[entity.Product]](ctx, s.client, ProductsPath+"/"+documentID, contentapi.RequestOptions{
		Query: populate(),
	})
	if err != nil {
		if contentapi.IsStatus(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return res.Data, nil
}

// FindByCategory lists products whose category slug matches, optionally
// excluding one product code.
func (s *productSource) FindByCategory(ctx context.Context, slug, excludeCode string, page, pageSize int) (*entity.ProductPage, error) {
	q := listQuery(page, pageSize)
	q["filters[category][slug][$eq]"] = slug
	if excludeCode != "" {
		q["filters[code][$ne]"] = excludeCode
	}
	return s.list(ctx, q)
}

// List lists products, matching search against name or code when set.
func (s *productSource) List(ctx context.Context, search string, page, pageSize int) (*entity.ProductPage, error) {
	q := listQuery(page, pageSize)
	if search != "" {
		q["filters[$or][0][name][$containsi]"] = search
		q["filters[$or][1][code][$containsi]"] = search
	}
	return s.list(ctx, q)
}

// ListCodes lists live product codes only.
func (s *productSource) ListCodes(ctx context.Context, page, pageSize int) ([]string, entity.Pagination, error) {
	res, err := contentapi.Get[contentapi.Collection[entity.ProductRef]](ctx, s.client, ProductsPath, contentapi.RequestOptions{
		Query: contentapi.Query{
			"fields[0]":            "code",
			"pagination[page]":     page,
			"pagination[pageSize]": pageSize,
			"publicationState":     "live",
			"sort[0]":              "code:asc",
		},
	})
	if err != nil {
		return nil, entity.Pagination{}, err
	}
	codes := make([]string, 0, len(res.Data))
	for _, r := range res.Data {
		if c := strings.TrimSpace(r.Code); c != "" {
			codes = append(codes, c)
		}
	}
	return codes, toPagination(res.Meta), nil
}

// ListCategories lists every category, served from cache for a while.
func (s *productSource) ListCategories(ctx context.Context) ([]entity.Category, error) {
	res, err := contentapi.Get[contentapi.Collection[entity.Category]](ctx, s.client, CategoriesPath, contentapi.RequestOptions{
		Query: contentapi.Query{
			"fields[0]":            "name",
			"fields[1]":            "slug",
			"pagination[pageSize]": usecase.MaxPageSize,
			"sort[0]":              "name:asc",
		},
		Revalidate: categoriesRevalidate,
	})
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (s *productSource) list(ctx context.Context, q contentapi.Query) (*entity.ProductPage, error) {
	res, err := contentapi.Get[contentapi.Collection[entity.Product]](ctx, s.client, ProductsPath, contentapi.RequestOptions{Query: q})
	if err != nil {
		return nil, err
	}
	data := res.Data
	if data == nil {
		data = []entity.Product{}
	}
	return &entity.ProductPage{Data: data, Meta: entity.PageMeta{Pagination: toPagination(res.Meta)}}, nil
}

func populate() contentapi.Query {
	q := contentapi.Query{}
	for i, f := range productFields {
		q["fields["+strconv.Itoa(i)+"]"] = f
	}
	for i, p := range productPopulate {
		q["populate["+strconv.Itoa(i)+"]"] = p
	}
	return q
}

func listQuery(page, pageSize int) contentapi.Query {
	q := populate()
	q["pagination[page]"] = page
	q["pagination[pageSize]"] = pageSize
	q["publicationState"] = "live"
	q["sort[0]"] = "name:asc"
	return q
}

func toPagination(m contentapi.Meta) entity.Pagination {
	if m.Pagination == nil {
		return entity.Pagination{}
	}
	return entity.Pagination{
		Page:      m.Pagination.Page,
		PageSize:  m.Pagination.PageSize,
		PageCount: m.Pagination.PageCount,
		Total:     m.Pagination.Total,
	}
}
