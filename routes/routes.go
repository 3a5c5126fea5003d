package routes

import (
	"net/http"
	"time"

	"coursestore/config"
	"coursestore/handlers"
	"coursestore/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterLessonRoutes registers catalog endpoints.
func RegisterLessonRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/lessons", hb.ListLessonsHandler)
	r.PUT("/lessons/:id", hb.UpdateLessonSeatsHandler)
	r.GET("/search", hb.SearchLessonsHandler)
}

// RegisterOrderRoutes registers order endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/orders", hb.CreateOrderHandler)
	r.GET("/orders", hb.ListOrdersHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/reseed", hb.ReseedCatalogHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterStaticRoutes serves lesson images straight from disk.
func RegisterStaticRoutes(r *gin.Engine) {
	r.Static("/images", config.AppConfig.ImageDir)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterLessonRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterStaticRoutes(r)
}
