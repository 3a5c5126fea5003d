// File: services/order/interface.go
package order

import (
	"context"

	lessonRepo "coursestore/database/repository/lesson"
	orderRepo "coursestore/database/repository/order"
	"coursestore/models"
	"coursestore/services/ledger"
)

// OrderInput is the validated submission payload. NumberOfSpaces applies
// uniformly to every lesson in LessonIDs.
type OrderInput struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	LessonIDs      []int  `json:"lessonIDs"`
	NumberOfSpaces int    `json:"numberOfSpaces"`
}

type OrderService interface {
	SubmitOrder(ctx context.Context, input OrderInput) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}

type DefaultOrderService struct {
	Repo       orderRepo.OrderRepository
	LessonRepo lessonRepo.LessonRepository
	Ledger     ledger.SeatLedger
}
