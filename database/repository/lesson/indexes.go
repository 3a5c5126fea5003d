// FILE: database/repository/lesson/indexes.go
package lessonRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the lessons collection.
func (r *mongoLessonRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on lesson ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Text index over the searchable string fields
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "location", Value: "text"},
				{Key: "description", Value: "text"},
			},
			Options: options.Index().SetName("lesson_text_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create lesson indexes: %w", err)
	}
	return nil
}
