// Package dto defines the JSON shapes of the content endpoints.
package dto

import (
	"encoding/json"
	"time"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/domain/entity"
)

// CoverFormat is the rendition used for article covers.
const CoverFormat = "medium"

type ArticleResponse struct {
	DocumentID  string          `json:"documentId"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Summary     string          `json:"summary"`
	Content     json.RawMessage `json:"content,omitempty"`
	CoverURL    string          `json:"coverUrl"`
	PublishedAt *time.Time      `json:"publishedAt"`
}

type PageMeta struct {
	Pagination entity.Pagination `json:"pagination"`
}

type ArticlePageResponse struct {
	Data []ArticleResponse `json:"data"`
	Meta PageMeta          `json:"meta"`
}

type BrandResponse struct {
	Name         string `json:"name"`
	Slogan       string `json:"slogan"`
	LogoURL      string `json:"logoUrl"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
}

// NewArticleResponse converts a. Listings drop the body.
func NewArticleResponse(a entity.Article, mediaBase string, withContent bool) ArticleResponse {
	out := ArticleResponse{
		DocumentID:  a.DocumentID,
		Title:       a.Title,
		Slug:        a.Slug,
		Summary:     a.Summary,
		CoverURL:    a.Cover.ImageURL(CoverFormat, mediaBase),
		PublishedAt: a.PublishedAt,
	}
	if withContent {
		out.Content = a.Content
	}
	return out
}

func NewArticlePageResponse(p *entity.ArticlePage, mediaBase string) ArticlePageResponse {
	data := make([]ArticleResponse, 0, len(p.Data))
	for _, a := range p.Data {
		data = append(data, NewArticleResponse(a, mediaBase, false))
	}
	return ArticlePageResponse{Data: data, Meta: PageMeta{Pagination: p.Pagination}}
}

func NewBrandResponse(b *entity.Brand, mediaBase string) BrandResponse {
	return BrandResponse{
		Name:         b.Name,
		Slogan:       b.Slogan,
		LogoURL:      b.Logo.ImageURL("", mediaBase),
		ContactEmail: b.ContactEmail,
		Phone:        b.Phone,
	}
}
