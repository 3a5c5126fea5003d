package ledger

import "fmt"

// NotFoundError signals that no lesson with the given id exists.
type NotFoundError struct {
	LessonID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lesson %d not found", e.LessonID)
}

// InsufficientSeatsError signals that demand exceeds availability.
type InsufficientSeatsError struct {
	LessonID  int
	Requested int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("lesson %d has fewer than %d seats available", e.LessonID, e.Requested)
}

// InvalidArgumentError signals malformed caller input.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}
