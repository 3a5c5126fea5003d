// File: services/order/order.go
package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coursestore/models"
	"coursestore/services/ledger"
	"coursestore/utils"

	"go.uber.org/zap"
)

// SubmitOrder validates the submission, reserves seats on every referenced
// lesson, and records the order. The reservation pass is all-or-nothing: all
// lessons are pre-checked before any decrement, and if a concurrent
// reservation drains a lesson mid-way, the decrements already applied are
// rolled back and no order is written.
func (s *DefaultOrderService) SubmitOrder(ctx context.Context, input OrderInput) (*models.Order, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	if err := s.precheck(ctx, input); err != nil {
		return nil, err
	}

	if err := s.reserveAll(ctx, input); err != nil {
		return nil, err
	}

	record := models.Order{
		Name:           strings.TrimSpace(input.Name),
		Phone:          strings.TrimSpace(input.Phone),
		LessonIDs:      input.LessonIDs,
		NumberOfSpaces: input.NumberOfSpaces,
		CreatedAt:      time.Now().UTC(),
		Status:         models.OrderStatusConfirmed,
	}
	id, err := s.Repo.Create(ctx, record)
	if err != nil {
		// Seats were already taken; hand them back so the catalog stays
		// consistent with the absent order record.
		s.rollback(ctx, input.LessonIDs, input.NumberOfSpaces)
		return nil, fmt.Errorf("failed to record order: %w", err)
	}
	record.ID = id

	utils.GetLogger().Info("order created",
		zap.String("orderID", record.ID),
		zap.Ints("lessonIDs", record.LessonIDs),
		zap.Int("numberOfSpaces", record.NumberOfSpaces),
	)
	return &record, nil
}

func (s *DefaultOrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.GetAll(ctx)
}

// validate fails fast on malformed input with zero store calls.
func validate(input OrderInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if strings.TrimSpace(input.Phone) == "" {
		return &ValidationError{Field: "phone", Message: "must not be empty"}
	}
	if len(input.LessonIDs) == 0 {
		return &ValidationError{Field: "lessonIDs", Message: "must reference at least one lesson"}
	}
	seen := make(map[int]struct{}, len(input.LessonIDs))
	for _, id := range input.LessonIDs {
		if _, dup := seen[id]; dup {
			return &ValidationError{Field: "lessonIDs", Message: fmt.Sprintf("lesson %d referenced more than once", id)}
		}
		seen[id] = struct{}{}
	}
	if input.NumberOfSpaces <= 0 {
		return &ValidationError{Field: "numberOfSpaces", Message: "must be a positive integer"}
	}
	return nil
}

// precheck verifies every referenced lesson exists and can satisfy the
// demand before any seat is touched.
func (s *DefaultOrderService) precheck(ctx context.Context, input OrderInput) error {
	lessons, err := s.LessonRepo.GetByIDs(ctx, input.LessonIDs)
	if err != nil {
		return fmt.Errorf("failed to load lessons for order: %w", err)
	}

	byID := make(map[int]int, len(lessons))
	for _, lesson := range lessons {
		byID[lesson.ID] = lesson.AvailableSeats
	}
	for _, id := range input.LessonIDs {
		available, ok := byID[id]
		if !ok {
			return &ledger.NotFoundError{LessonID: id}
		}
		if available < input.NumberOfSpaces {
			return &ledger.InsufficientSeatsError{LessonID: id, Requested: input.NumberOfSpaces}
		}
	}
	return nil
}

// reserveAll applies the per-lesson decrements. A failure part-way (a
// concurrent order winning the race after the precheck) rolls back every
// decrement already applied.
func (s *DefaultOrderService) reserveAll(ctx context.Context, input OrderInput) error {
	for i, id := range input.LessonIDs {
		if _, err := s.Ledger.ReserveSeats(ctx, id, input.NumberOfSpaces); err != nil {
			s.rollback(ctx, input.LessonIDs[:i], input.NumberOfSpaces)
			return err
		}
	}
	return nil
}

func (s *DefaultOrderService) rollback(ctx context.Context, lessonIDs []int, count int) {
	for _, id := range lessonIDs {
		if err := s.Ledger.ReleaseSeats(ctx, id, count); err != nil {
			utils.GetLogger().Error("failed to roll back seat reservation",
				zap.Int("lessonID", id),
				zap.Int("count", count),
				zap.Error(err),
			)
		}
	}
}
