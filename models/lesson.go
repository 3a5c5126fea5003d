package models

// Lesson represents a bookable course offering in the catalog.
type Lesson struct {
	ID             int     `bson:"id" json:"id"`                         // Stable catalog identifier, externally assigned
	Title          string  `bson:"title" json:"title"`                   // Course title, e.g. "Mathematics"
	Description    string  `bson:"description" json:"description"`       // Short marketing blurb
	Price          float64 `bson:"price" json:"price"`                   // Price per seat, never negative
	Location       string  `bson:"location" json:"location"`             // Where the lesson is held
	Rating         int     `bson:"rating" json:"rating"`                 // 1-5 customer rating
	AvailableSeats int     `bson:"availableSeats" json:"availableSeats"` // Remaining capacity, never negative
	Image          string  `bson:"image" json:"image"`                   // Display image path, served statically
}
