package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/app/di"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/app/router"
	addressadapters "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/address/adapters"
	addressentity "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/address/domain/entity"
	addresshandler "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/address/transport/handler"
	addressusecase "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/address/usecase"
	authadapters "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/adapters"
	authentity "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/domain/entity"
	authhandler "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/transport/handler"
	authusecase "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/usecase"
	cartadapters "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/adapters"
	cartentity "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/domain/entity"
	carthandler "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/transport/handler"
	cartusecase "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/usecase"
	catalogadapters "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/adapters"
	catalogcms "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/adapters/cms"
	catalogentity "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/domain/entity"
	cataloghandler "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/transport/handler"
	catalogusecase "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/usecase"
	contentcms "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/adapters/cms"
	contenthandler "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/transport/handler"
	contentusecase "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/usecase"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/config"
	platformdb "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/db"
	jwtmw "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/jwt"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/logger"
	platformredis "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/redis"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/shutdown"
)

const (
	shutdownTimeout = 10 * time.Second
	purgeInterval   = time.Hour
)

// models lists every table owned by this service.
var models = []any{
	&authentity.User{},
	&authentity.RevokedSession{},
	&catalogentity.ProductShadow{},
	&cartentity.Cart{},
	&cartentity.CartLine{},
	&addressentity.Region{},
	&addressentity.Comuna{},
	&addressentity.Address{},
}

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Options{
		Service:   "storefront-api",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// db
	db, err := platformdb.Open(cfg.DB, models...)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	userRepo := authadapters.NewUserGorm(db)
	if err := userRepo.SeedGuest(ctx, jwtmw.GuestUserID); err != nil {
		return fmt.Errorf("seed guest user: %w", err)
	}

	addressRepo := addressadapters.NewAddressGorm(db)
	if cfg.DB.RunMigrations {
		if err := addressRepo.Seed(ctx); err != nil {
			return fmt.Errorf("seed regions: %w", err)
		}
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(ctx, cfg.Redis); err != nil {
		log.Warn("Redis unavailable; running without response cache", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	contentClient, _, err := di.NewContentClient(cfg.Content, rdb)
	if err != nil {
		return err
	}
	mediaBase := contentClient.BaseURL()

	// Repository
	revocations := di.NewRevocationStore(rdb, db)
	shadowRepo := catalogadapters.NewShadowGorm(db)
	cartRepo := cartadapters.NewCartGorm(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo)
	sessionUC := authusecase.NewSessionUsecase(
		jwtmw.NewGenerator(cfg.Session.Secret, cfg.Session.TTL),
		jwtmw.NewParser(cfg.Session.Secret),
		revocations,
	)
	catalogUC := catalogusecase.NewCatalogUsecase(shadowRepo, catalogcms.NewProductSource(contentClient))
	cartUC := cartusecase.NewCartUsecase(cartRepo, catalogUC, mediaBase)
	addressUC := addressusecase.NewAddressUsecase(addressRepo)
	contentUC := contentusecase.NewContentUsecase(contentcms.NewContentSource(contentClient))

	// Handler
	handlers := router.Handlers{
		Auth: authhandler.NewAuthHandler(authUC, sessionUC, authhandler.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		}),
		Cart:    carthandler.NewCartHandler(cartUC, mediaBase),
		Catalog: cataloghandler.NewCatalogHandler(catalogUC, mediaBase),
		Address: addresshandler.NewAddressHandler(addressUC),
		Content: contenthandler.NewContentHandler(contentUC, mediaBase),
	}
	engine := router.NewRouter(handlers, router.Options{
		CORSOrigins: cfg.CORSOrigins,
		CookieName:  cfg.Session.CookieName,
		Sessions:    sessionUC,
		DB:          sqlDB,
	})

	var wg sync.WaitGroup
	if p, ok := revocations.(purger); ok {
		wg.Add(1)
		go func() {
			defer wg.Done()
			purgeLoop(ctx, p, purgeInterval)
		}()
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		cancel()
		wg.Wait()
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", "error", err)
	}
	wg.Wait()
	log.Info("bye")
	return nil
}

// purger is implemented by revocation stores that keep expired rows around.
type purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

func purgeLoop(ctx context.Context, p purger, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := p.PurgeExpired(ctx)
			if err != nil {
				slog.Warn("purge revoked sessions failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("purged revoked sessions", "count", n)
			}
		}
	}
}
