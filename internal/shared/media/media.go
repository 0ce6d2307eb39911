// Package media models image references returned by the content service,
// which arrive either as a bare URL string or as an uploaded asset object.
package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind discriminates the Media union.
type Kind int

const (
	KindNone Kind = iota
	KindURL
	KindAsset
)

// FallbackImage is served when no usable URL can be resolved.
const FallbackImage = "/img/placeholder-producto.png"

// Format is one resized rendition of an asset.
type Format struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Asset is an uploaded file.
type Asset struct {
	ID              int               `json:"id,omitempty"`
	DocumentID      string            `json:"documentId,omitempty"`
	Name            string            `json:"name,omitempty"`
	AlternativeText string            `json:"alternativeText,omitempty"`
	URL             string            `json:"url,omitempty"`
	Formats         map[string]Format `json:"formats,omitempty"`
}

// Media is either a plain URL or an Asset.
type Media struct {
	Kind  Kind
	URL   string
	Asset *Asset
}

// FromURL builds a URL media.
func FromURL(u string) Media { return Media{Kind: KindURL, URL: u} }

// FromAsset builds an asset media.
func FromAsset(a Asset) Media { return Media{Kind: KindAsset, Asset: &a} }

// UnmarshalJSON accepts a string, an asset object, or null.
func (m *Media) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*m = Media{}
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*m = FromURL(s)
		return nil
	case b[0] == '{':
		var a Asset
		if err := json.Unmarshal(b, &a); err != nil {
			return err
		}
		*m = FromAsset(a)
		return nil
	default:
		return fmt.Errorf("media: unsupported JSON value %s", b)
	}
}

// MarshalJSON writes the same shape it was decoded from.
func (m Media) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case KindURL:
		return json.Marshal(m.URL)
	case KindAsset:
		return json.Marshal(m.Asset)
	default:
		return []byte("null"), nil
	}
}

// ImageURL resolves the URL to display: the named format, then the asset's
// own URL, then FallbackImage. Relative URLs are resolved against baseURL.
func (m Media) ImageURL(format, baseURL string) string {
	var u string
	switch m.Kind {
	case KindURL:
		u = m.URL
	case KindAsset:
		if m.Asset != nil {
			if f, ok := m.Asset.Formats[format]; ok && f.URL != "" {
				u = f.URL
			} else {
				u = m.Asset.URL
			}
		}
	}
	if strings.TrimSpace(u) == "" {
		return FallbackImage
	}
	return Absolute(baseURL, u)
}

// FirstImageURL resolves the first image of images, or FallbackImage.
func FirstImageURL(images []Media, format, baseURL string) string {
	if len(images) == 0 {
		return FallbackImage
	}
	return images[0].ImageURL(format, baseURL)
}

// Absolute prefixes root-relative u with baseURL. Absolute and protocol
// relative URLs are returned unchanged.
func Absolute(baseURL, u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") || strings.HasPrefix(u, "//") {
		return u
	}
	if baseURL == "" {
		return u
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(u, "/")
}
