// File: services/ledger/interface.go
package ledger

import (
	"context"

	lessonRepo "coursestore/database/repository/lesson"

	"github.com/go-redis/redis/v8"
)

// SeatLedger validates and applies seat-count changes for lessons. It is
// the only component allowed to mutate availableSeats.
type SeatLedger interface {
	// ReserveSeats atomically decrements a lesson's available seats and
	// returns the new count.
	ReserveSeats(ctx context.Context, lessonID, count int) (int, error)
	// ReleaseSeats restores previously reserved seats.
	ReleaseSeats(ctx context.Context, lessonID, count int) error
	// SetSeats sets the absolute seat count (administrative edit).
	SetSeats(ctx context.Context, lessonID, seats int) error
}

type DefaultSeatLedger struct {
	Repo lessonRepo.LessonRepository
	// CacheClient invalidates the cached lesson list after a seat
	// mutation. Nil disables cache handling.
	CacheClient *redis.Client
}
