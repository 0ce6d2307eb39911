// Package contentapi is a client for the headless content service that owns the
// product catalog, categories, articles and branding.
package contentapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/config"
)

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 8 << 20

// ResponseCache stores successful response bodies for a revalidation window.
// Following Go convention: the interface is defined here, by its consumer.
type ResponseCache interface {
	Get(ctx context.Context, path, query string) ([]byte, bool)
	Set(ctx context.Context, path, query string, body []byte, ttl time.Duration)
}

// Client issues authenticated GET requests to the content service.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	cache   ResponseCache
}

// RequestOptions tunes a single call.
type RequestOptions struct {
	Query Query
	// Revalidate > 0 allows the response to be served from (and stored in)
	// the response cache for that long. Zero bypasses the cache.
	Revalidate time.Duration
	// Timeout > 0 aborts the call after that long.
	Timeout time.Duration
}

// NewClient validates cfg and returns a Client. A nil cache disables caching.
func NewClient(cfg config.ContentConfig, httpClient *http.Client, cache ResponseCache) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("contentapi: base URL is required")
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("contentapi: API token is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cache == nil {
		cache = noCache{}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    httpClient,
		cache:   cache,
	}, nil
}

// BaseURL returns the content service origin, used to absolutize media URLs.
func (c *Client) BaseURL() string { return c.baseURL }

// Get fetches path and decodes the JSON body into T.
func Get[T any](ctx context.Context, c *Client, path string, opts RequestOptions) (T, error) {
	var out T
	body, err := c.fetch(ctx, path, opts)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("contentapi: decode %s: %w", path, err)
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, path string, opts RequestOptions) ([]byte, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	query := opts.Query.Encode()

	if opts.Revalidate > 0 {
		if b, ok := c.cache.Get(ctx, path, query); ok {
			return b, nil
		}
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	u := c.baseURL + path
	if query != "" {
		u += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if opts.Revalidate > 0 {
		req.Header.Set("Cache-Control", "max-age="+strconv.Itoa(int(opts.Revalidate.Seconds())))
	} else {
		req.Header.Set("Cache-Control", "no-store")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contentapi: GET %s: %w", path, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("contentapi: read %s: %w", path, err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &HTTPError{Status: res.StatusCode, Path: path, Message: extractMessage(body, res.StatusCode)}
	}

	if opts.Revalidate > 0 {
		c.cache.Set(ctx, path, query, body, opts.Revalidate)
	}
	return body, nil
}

type noCache struct{}

func (noCache) Get(context.Context, string, string) ([]byte, bool)         { return nil, false }
func (noCache) Set(context.Context, string, string, []byte, time.Duration) {}
