package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the wired endpoint handlers for route registration.
type HandlerBundle struct {
	// Catalog endpoints.
	ListLessonsHandler       gin.HandlerFunc
	UpdateLessonSeatsHandler gin.HandlerFunc
	SearchLessonsHandler     gin.HandlerFunc
	ReseedCatalogHandler     gin.HandlerFunc

	// Order endpoints.
	CreateOrderHandler gin.HandlerFunc
	ListOrdersHandler  gin.HandlerFunc
}
