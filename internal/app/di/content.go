// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/cache"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/config"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/contentapi"
	infrahttp "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/http"
)

// contentCacheNamespace prefixes the Redis keys of cached content responses.
const contentCacheNamespace = "content"

// NewContentClient creates a fully configured content-service client. With a
// nil rdb responses are never cached.
func NewContentClient(cfg config.ContentConfig, rdb *redis.Client) (*contentapi.Client, *cache.ResponseCache, error) {
	rc := cache.NewResponseCache(rdb, contentCacheNamespace)
	client, err := contentapi.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout), rc)
	if err != nil {
		return nil, nil, err
	}
	return client, rc, nil
}
