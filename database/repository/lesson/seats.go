// File: database/repository/lesson/seats.go
package lessonRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coursestore/models"
)

// DecrementSeats atomically reserves count seats on a lesson. The filter
// only matches while availableSeats >= count, so a concurrent reservation
// that drains the lesson makes this call fail rather than drive the count
// negative. Returns the seat count after the decrement.
func (r *mongoLessonRepo) DecrementSeats(ctx context.Context, lessonID, count int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":             lessonID,
		"availableSeats": bson.M{"$gte": count},
	}
	update := bson.M{"$inc": bson.M{"availableSeats": -count}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Lesson
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return updated.AvailableSeats, nil
	}
	if err != mongo.ErrNoDocuments {
		return 0, fmt.Errorf("failed to decrement seats for lesson %d: %w", lessonID, err)
	}

	// No match: either the lesson does not exist or it lacks seats.
	n, countErr := r.coll.CountDocuments(ctx, bson.M{"id": lessonID})
	if countErr != nil {
		return 0, fmt.Errorf("failed to check lesson %d existence: %w", lessonID, countErr)
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	return 0, ErrSeatConflict
}

// IncrementSeats restores previously reserved seats. Used to roll back the
// earlier decrements of a multi-lesson order when a later one fails.
func (r *mongoLessonRepo) IncrementSeats(ctx context.Context, lessonID, count int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": lessonID}
	update := bson.M{"$inc": bson.M{"availableSeats": count}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to restore seats for lesson %d: %w", lessonID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetSeats sets the absolute seat count on a lesson. Administrative
// operation; callers validate the value.
func (r *mongoLessonRepo) SetSeats(ctx context.Context, lessonID, seats int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": lessonID}
	update := bson.M{"$set": bson.M{"availableSeats": seats}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update seats for lesson %d: %w", lessonID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
