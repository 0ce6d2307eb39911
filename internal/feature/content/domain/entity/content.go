// Package entity defines the editorial content read from the content service.
package entity

import (
	"encoding/json"
	"time"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/media"
)

// Article is a published blog post.
type Article struct {
	ID          int             `json:"id"`
	DocumentID  string          `json:"documentId"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Summary     string          `json:"summary"`
	Content     json.RawMessage `json:"content"`
	Cover       media.Media     `json:"cover"`
	PublishedAt *time.Time      `json:"publishedAt"`
}

// Pagination is the page metadata of an ArticlePage.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// ArticlePage is one page of articles, newest first.
type ArticlePage struct {
	Data       []Article
	Pagination Pagination
}

// Brand is the storefront identity shown in headers and footers.
type Brand struct {
	Name         string      `json:"name"`
	Slogan       string      `json:"slogan"`
	Logo         media.Media `json:"logo"`
	ContactEmail string      `json:"contactEmail"`
	Phone        string      `json:"phone"`
}
