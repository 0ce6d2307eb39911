// Package entity defines the catalog domain types.
package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/media"
)

// Category groups products. Slug is the stable lookup key.
type Category struct {
	ID         int    `json:"id,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

// Product is owned by the content service. Price is null when the entry has no price.
type Product struct {
	ID          int                 `json:"id,omitempty"`
	DocumentID  string              `json:"documentId"`
	Code        string              `json:"code"`
	Name        string              `json:"name"`
	Price       decimal.NullDecimal `json:"price"`
	Description json.RawMessage     `json:"description,omitempty"`
	Images      []media.Media       `json:"images"`
	Category    *Category           `json:"category,omitempty"`
}

// Sellable reports whether the product carries everything a cart line needs.
func (p *Product) Sellable() bool {
	return p != nil && p.Code != "" && p.Name != "" && p.Price.Valid
}

// ProductRef is the minimal projection used to create a local shadow.
type ProductRef struct {
	DocumentID string `json:"documentId"`
	Code       string `json:"code"`
}

// ProductDetail is a product with others from the same category.
type ProductDetail struct {
	Product Product   `json:"product"`
	Related []Product `json:"related"`
}

// Pagination describes one page of a collection.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// PageMeta mirrors the content service meta object.
type PageMeta struct {
	Pagination Pagination `json:"pagination"`
}

// ProductPage is one page of products.
type ProductPage struct {
	Data []Product `json:"data"`
	Meta PageMeta  `json:"meta"`
}
