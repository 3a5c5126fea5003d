// File: database/repository/lesson/crud.go
package lessonRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coursestore/models"
)

func (r *mongoLessonRepo) GetAll(ctx context.Context) ([]models.Lesson, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []models.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *mongoLessonRepo) GetByIDs(ctx context.Context, ids []int) ([]models.Lesson, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bson.M{"$in": ids}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lessons by id: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []models.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *mongoLessonRepo) Search(ctx context.Context, filter bson.M) ([]models.Lesson, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []models.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *mongoLessonRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *mongoLessonRepo) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to clear lessons collection: %w", err)
	}
	return nil
}

func (r *mongoLessonRepo) InsertMany(ctx context.Context, lessons []models.Lesson) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(lessons))
	for i, lesson := range lessons {
		docs[i] = lesson
	}

	res, err := r.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: boolPtr(true)})
	if err != nil {
		return 0, fmt.Errorf("failed to insert lessons: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func boolPtr(b bool) *bool { return &b }
