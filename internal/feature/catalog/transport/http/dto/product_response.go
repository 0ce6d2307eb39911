// Package dto defines the JSON shapes of the catalog endpoints.
package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/media"
)

// ImageFormat is the rendition used for catalog images.
const ImageFormat = "medium"

type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductResponse struct {
	Code        string            `json:"code"`
	DocumentID  string            `json:"documentId"`
	Name        string            `json:"name"`
	Price       *decimal.Decimal  `json:"price"`
	Description json.RawMessage   `json:"description,omitempty"`
	ImageURL    string            `json:"imageUrl"`
	Images      []string          `json:"images"`
	Category    *CategoryResponse `json:"category,omitempty"`
}

type ProductPageResponse struct {
	Data []ProductResponse `json:"data"`
	Meta entity.PageMeta   `json:"meta"`
}

type ProductDetailResponse struct {
	Product ProductResponse   `json:"product"`
	Related []ProductResponse `json:"related"`
}

// NewProductResponse resolves image URLs against mediaBase.
func NewProductResponse(p entity.Product, mediaBase string) ProductResponse {
	images := make([]string, 0, len(p.Images))
	for _, m := range p.Images {
		images = append(images, m.ImageURL(ImageFormat, mediaBase))
	}
	out := ProductResponse{
		Code:        p.Code,
		DocumentID:  p.DocumentID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    media.FirstImageURL(p.Images, ImageFormat, mediaBase),
		Images:      images,
	}
	if p.Price.Valid {
		price := p.Price.Decimal
		out.Price = &price
	}
	if p.Category != nil {
		out.Category = &CategoryResponse{Name: p.Category.Name, Slug: p.Category.Slug}
	}
	return out
}

// NewProductList maps products in order.
func NewProductList(ps []entity.Product, mediaBase string) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProductResponse(p, mediaBase))
	}
	return out
}

// NewProductPageResponse keeps the page metadata as the content service sent it.
func NewProductPageResponse(page *entity.ProductPage, mediaBase string) ProductPageResponse {
	return ProductPageResponse{Data: NewProductList(page.Data, mediaBase), Meta: page.Meta}
}

func NewCategoryList(cs []entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, CategoryResponse{Name: c.Name, Slug: c.Slug})
	}
	return out
}
