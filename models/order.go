package models

import "time"

// Order statuses. Orders are created confirmed and never transition.
const (
	OrderStatusConfirmed = "confirmed"
)

// Order represents a customer's request to reserve seats across one or
// more lessons. NumberOfSpaces applies uniformly to every lesson in
// LessonIDs. Orders are immutable once written.
type Order struct {
	ID             string    `bson:"id" json:"id"`                         // Unique order identifier (UUID), assigned at insert
	Name           string    `bson:"name" json:"name"`                     // Customer name
	Phone          string    `bson:"phone" json:"phone"`                   // Customer phone number
	LessonIDs      []int     `bson:"lessonIDs" json:"lessonIDs"`           // Lessons the order reserves seats on
	NumberOfSpaces int       `bson:"numberOfSpaces" json:"numberOfSpaces"` // Seats reserved per lesson
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`           // Timestamp when the order was recorded
	Status         string    `bson:"status" json:"status"`                 // e.g. "confirmed"
}
