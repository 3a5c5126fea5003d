// File: services/catalog/catalog.go
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"coursestore/models"
	"coursestore/utils"

	"go.uber.org/zap"
)

// How long a cached lesson list stays fresh. Seat mutations invalidate it
// explicitly, so the TTL only bounds staleness after out-of-band edits.
const lessonListTTL = 30 * time.Second

func (s *DefaultCatalogService) ListLessons(ctx context.Context) ([]models.Lesson, error) {
	if s.CacheClient != nil {
		if data, err := s.CacheClient.Get(ctx, utils.LessonsCacheKey).Result(); err == nil {
			var lessons []models.Lesson
			if err := json.Unmarshal([]byte(data), &lessons); err == nil {
				return lessons, nil
			}
		}
	}

	lessons, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(lessons); err == nil {
			if err := s.CacheClient.Set(ctx, utils.LessonsCacheKey, data, lessonListTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache lesson list", zap.Error(err))
			}
		}
	}
	return lessons, nil
}
