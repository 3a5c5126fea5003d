// File: services/catalog/seed_data.go
package catalog

import "coursestore/models"

// SeedLessons returns the fixed reference dataset the catalog is
// bootstrapped with. IDs are stable so the storefront can deep-link them.
func SeedLessons() []models.Lesson {
	return []models.Lesson{
		{ID: 2001, Title: "Mathematics", Description: "Algebra, geometry and problem solving for all levels", Price: 100, Location: "Hendon", Rating: 5, AvailableSeats: 5, Image: "/images/maths.png"},
		{ID: 2002, Title: "English", Description: "Reading comprehension, writing and grammar practice", Price: 90, Location: "Colindale", Rating: 4, AvailableSeats: 5, Image: "/images/english.png"},
		{ID: 2003, Title: "Science", Description: "Hands-on experiments across the natural sciences", Price: 110, Location: "Brent Cross", Rating: 5, AvailableSeats: 5, Image: "/images/science.png"},
		{ID: 2004, Title: "Music", Description: "Instrument basics, rhythm and ensemble playing", Price: 80, Location: "Golders Green", Rating: 4, AvailableSeats: 5, Image: "/images/music.png"},
		{ID: 2005, Title: "Art", Description: "Drawing, painting and mixed-media techniques", Price: 70, Location: "Kingsbury", Rating: 3, AvailableSeats: 5, Image: "/images/art.png"},
		{ID: 2006, Title: "Drama", Description: "Stagecraft, improvisation and public speaking", Price: 75, Location: "Harrow", Rating: 4, AvailableSeats: 5, Image: "/images/drama.png"},
		{ID: 2007, Title: "Chemistry", Description: "Foundations of chemical reactions and lab safety", Price: 120, Location: "Wembley", Rating: 5, AvailableSeats: 5, Image: "/images/chemistry.png"},
		{ID: 2008, Title: "Physics", Description: "Mechanics, electricity and the physics of everyday life", Price: 120, Location: "Edgware", Rating: 5, AvailableSeats: 5, Image: "/images/physics.png"},
		{ID: 2009, Title: "Biology", Description: "Cells, ecosystems and the human body", Price: 115, Location: "Finchley", Rating: 4, AvailableSeats: 5, Image: "/images/biology.png"},
		{ID: 2010, Title: "History", Description: "World history from ancient civilisations onwards", Price: 85, Location: "Barnet", Rating: 3, AvailableSeats: 5, Image: "/images/history.png"},
		{ID: 2011, Title: "Geography", Description: "Maps, climates and how landscapes shape societies", Price: 85, Location: "Mill Hill", Rating: 3, AvailableSeats: 5, Image: "/images/geography.png"},
		{ID: 2012, Title: "Programming", Description: "Introduction to coding with small real projects", Price: 130, Location: "Camden", Rating: 5, AvailableSeats: 5, Image: "/images/programming.png"},
	}
}
