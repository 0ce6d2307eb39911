package usecase

import (
	"context"
	"log/slog"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/ratelimiter"
)

// syncPageSize is the number of codes requested per content-service page.
const syncPageSize = MaxPageSize

// ShadowCatalog is the subset of the catalog usecase the sync job drives.
// Following Go convention: the interface is defined here, by its consumer.
type ShadowCatalog interface {
	ListCodes(ctx context.Context, page, pageSize int) ([]string, entity.Pagination, error)
	EnsureProductExistsByCode(ctx context.Context, code string) (*entity.ProductShadow, error)
}

// CacheInvalidator drops cached responses for a content path.
type CacheInvalidator interface {
	InvalidatePath(ctx context.Context, path string) error
}

// SyncReport summarizes one run of SyncAll.
type SyncReport struct {
	Seen   int
	Synced int
	Failed int
}

// SyncUsecase walks every live product code and makes sure a local shadow
// exists for it.
type SyncUsecase struct {
	catalog     ShadowCatalog
	limiter     ratelimiter.Limiter
	invalidator CacheInvalidator
	paths       []string
}

// NewSyncUsecase creates a SyncUsecase. paths are invalidated in the response
// cache once the run finishes; invalidator may be nil.
func NewSyncUsecase(catalog ShadowCatalog, limiter ratelimiter.Limiter, invalidator CacheInvalidator, paths ...string) *SyncUsecase {
	return &SyncUsecase{catalog: catalog, limiter: limiter, invalidator: invalidator, paths: paths}
}

// SyncAll pages through all product codes. A code that fails is logged and
// skipped; only listing errors and context cancellation abort the run.
func (s *SyncUsecase) SyncAll(ctx context.Context) (SyncReport, error) {
	var rep SyncReport

	for page := 1; ; page++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return rep, err
		}
		codes, pg, err := s.catalog.ListCodes(ctx, page, syncPageSize)
		if err != nil {
			return rep, err
		}

		for _, code := range codes {
			rep.Seen++
			if err := s.limiter.Wait(ctx); err != nil {
				return rep, err
			}
			if _, err := s.catalog.EnsureProductExistsByCode(ctx, code); err != nil {
				rep.Failed++
				slog.Error("failed to sync product shadow", "code", code, "error", err)
				continue
			}
			rep.Synced++
		}

		if len(codes) == 0 || page >= pg.PageCount {
			break
		}
	}

	s.invalidate(ctx)
	return rep, nil
}

func (s *SyncUsecase) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	for _, p := range s.paths {
		if err := s.invalidator.InvalidatePath(ctx, p); err != nil {
			slog.Warn("cache invalidation failed", "path", p, "error", err)
		}
	}
}
