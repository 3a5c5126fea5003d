// File: database/repository/lesson/interface.go
package lessonRepo

import (
	"context"
	"errors"

	"coursestore/config"
	"coursestore/database"
	"coursestore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors distinguishing the two failure modes of a conditional
// seat decrement.
var (
	ErrNotFound     = errors.New("lesson not found")
	ErrSeatConflict = errors.New("not enough seats available")
)

type LessonRepository interface {
	GetAll(ctx context.Context) ([]models.Lesson, error)
	GetByIDs(ctx context.Context, ids []int) ([]models.Lesson, error)
	Search(ctx context.Context, filter bson.M) ([]models.Lesson, error)
	DecrementSeats(ctx context.Context, lessonID, count int) (int, error)
	IncrementSeats(ctx context.Context, lessonID, count int) error
	SetSeats(ctx context.Context, lessonID, seats int) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, lessons []models.Lesson) (int, error)
	EnsureIndexes() error
}

type mongoLessonRepo struct {
	coll *mongo.Collection
}

// NewMongoLessonRepo constructs a new MongoDB LessonRepository.
func NewMongoLessonRepo() LessonRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoLessonRepo{
		coll: db.Collection("lessons"),
	}
}
