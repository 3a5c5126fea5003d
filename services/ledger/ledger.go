// File: services/ledger/ledger.go
package ledger

import (
	"context"
	"errors"
	"fmt"

	lessonRepo "coursestore/database/repository/lesson"
	"coursestore/utils"

	"go.uber.org/zap"
)

func (s *DefaultSeatLedger) ReserveSeats(ctx context.Context, lessonID, count int) (int, error) {
	if count < 0 {
		return 0, &InvalidArgumentError{Message: fmt.Sprintf("requested seat count must not be negative, got %d", count)}
	}

	remaining, err := s.Repo.DecrementSeats(ctx, lessonID, count)
	if err != nil {
		switch {
		case errors.Is(err, lessonRepo.ErrNotFound):
			return 0, &NotFoundError{LessonID: lessonID}
		case errors.Is(err, lessonRepo.ErrSeatConflict):
			return 0, &InsufficientSeatsError{LessonID: lessonID, Requested: count}
		default:
			return 0, fmt.Errorf("seat reservation failed: %w", err)
		}
	}

	s.invalidateCache(ctx)
	utils.GetLogger().Info("reserved seats",
		zap.Int("lessonID", lessonID),
		zap.Int("count", count),
		zap.Int("remaining", remaining),
	)
	return remaining, nil
}

func (s *DefaultSeatLedger) ReleaseSeats(ctx context.Context, lessonID, count int) error {
	if count < 0 {
		return &InvalidArgumentError{Message: fmt.Sprintf("released seat count must not be negative, got %d", count)}
	}

	if err := s.Repo.IncrementSeats(ctx, lessonID, count); err != nil {
		if errors.Is(err, lessonRepo.ErrNotFound) {
			return &NotFoundError{LessonID: lessonID}
		}
		return fmt.Errorf("seat release failed: %w", err)
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *DefaultSeatLedger) SetSeats(ctx context.Context, lessonID, seats int) error {
	if seats < 0 {
		return &InvalidArgumentError{Message: fmt.Sprintf("availableSeats must not be negative, got %d", seats)}
	}

	if err := s.Repo.SetSeats(ctx, lessonID, seats); err != nil {
		if errors.Is(err, lessonRepo.ErrNotFound) {
			return &NotFoundError{LessonID: lessonID}
		}
		return fmt.Errorf("seat update failed: %w", err)
	}

	s.invalidateCache(ctx)
	utils.GetLogger().Info("set seats",
		zap.Int("lessonID", lessonID),
		zap.Int("availableSeats", seats),
	)
	return nil
}

// invalidateCache drops the cached lesson list so stale seat counts are
// never served after a mutation.
func (s *DefaultSeatLedger) invalidateCache(ctx context.Context) {
	if s.CacheClient == nil {
		return
	}
	if err := s.CacheClient.Del(ctx, utils.LessonsCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate lesson cache", zap.Error(err))
	}
}
