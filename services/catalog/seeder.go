// File: services/catalog/seeder.go
package catalog

import (
	"context"
	"fmt"

	"coursestore/utils"

	"go.uber.org/zap"
)

// SeedIfEmpty bulk-loads the reference dataset when the catalog holds no
// documents. A non-empty catalog makes it a no-op returning 0, so it is
// safe to call on every startup.
func (s *DefaultCatalogService) SeedIfEmpty(ctx context.Context) (int, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count lessons: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	return s.reseed(ctx)
}

// ForceReseed unconditionally clears the catalog and reloads the reference
// dataset. Administrative reset.
func (s *DefaultCatalogService) ForceReseed(ctx context.Context) (int, error) {
	return s.reseed(ctx)
}

func (s *DefaultCatalogService) reseed(ctx context.Context) (int, error) {
	logger := utils.GetLogger()

	if err := s.Repo.DeleteAll(ctx); err != nil {
		return 0, err
	}

	inserted, err := s.Repo.InsertMany(ctx, SeedLessons())
	if err != nil {
		return 0, err
	}

	// An already-existing index is not worth failing the seed over.
	if err := s.Repo.EnsureIndexes(); err != nil {
		logger.Warn("lesson index creation failed", zap.Error(err))
	}

	s.invalidateCache(ctx)
	logger.Info("catalog seeded", zap.Int("inserted", inserted))
	return inserted, nil
}

func (s *DefaultCatalogService) invalidateCache(ctx context.Context) {
	if s.CacheClient == nil {
		return
	}
	if err := s.CacheClient.Del(ctx, utils.LessonsCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate lesson cache", zap.Error(err))
	}
}
