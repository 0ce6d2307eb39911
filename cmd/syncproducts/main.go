// Command syncproducts creates local shadows for every live product in the
// content service and drops the cached catalog responses afterwards.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/app/di"
	catalogadapters "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/adapters"
	catalogcms "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/adapters/cms"
	catalogentity "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/domain/entity"
	catalogusecase "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/usecase"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/config"
	platformdb "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/db"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/logger"
	platformredis "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/redis"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/shutdown"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/ratelimiter"
)

const runTimeout = 30 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{Service: "storefront-syncproducts", Env: cfg.AppEnv, Level: cfg.LogLevel})

	sigCtx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()
	ctx, cancelRun := context.WithTimeout(sigCtx, runTimeout)
	defer cancelRun()

	db, err := platformdb.Open(cfg.DB, &catalogentity.ProductShadow{})
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(ctx, cfg.Redis); err != nil {
		log.Warn("Redis unavailable; cache will not be invalidated", "error", err)
	} else {
		rdb = tmp
		defer rdb.Close()
	}

	client, responseCache, err := di.NewContentClient(cfg.Content, rdb)
	if err != nil {
		log.Error("failed to create content client", "error", err)
		os.Exit(1)
	}

	catalogUC := catalogusecase.NewCatalogUsecase(
		catalogadapters.NewShadowGorm(db),
		catalogcms.NewProductSource(client),
	)
	syncUC := catalogusecase.NewSyncUsecase(
		catalogUC,
		ratelimiter.NewRateLimiter(cfg.SyncRatePerMinute, time.Minute),
		responseCache,
		catalogcms.ProductsPath, catalogcms.CategoriesPath,
	)

	rep, err := syncUC.SyncAll(ctx)
	if err != nil {
		log.Error("product sync aborted", "error", err, "seen", rep.Seen, "synced", rep.Synced, "failed", rep.Failed)
		os.Exit(1)
	}
	log.Info("product sync ok", "seen", rep.Seen, "synced", rep.Synced, "failed", rep.Failed)
}
