// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"coursestore/config"

	"github.com/go-redis/redis/v8"
)

// LessonsCacheKey is the cache key holding the serialized lesson list.
const LessonsCacheKey = "lessons:all"

// CacheClient is the generic cache client, used for the lesson-list cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
