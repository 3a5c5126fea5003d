// File: services/catalog/interface.go
package catalog

import (
	"context"

	lessonRepo "coursestore/database/repository/lesson"
	"coursestore/models"

	"github.com/go-redis/redis/v8"
)

type CatalogService interface {
	ListLessons(ctx context.Context) ([]models.Lesson, error)
	SearchLessons(ctx context.Context, query string) ([]models.Lesson, error)
	SeedIfEmpty(ctx context.Context) (int, error)
	ForceReseed(ctx context.Context) (int, error)
}

type DefaultCatalogService struct {
	Repo lessonRepo.LessonRepository
	// CacheClient serves the lesson list from redis with a short TTL.
	// Nil disables caching.
	CacheClient *redis.Client
}
