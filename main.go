// File: coursestore/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursestore/config"
	"coursestore/database"
	lessonRepoPkg "coursestore/database/repository/lesson"
	orderRepoPkg "coursestore/database/repository/order"
	"coursestore/handlers"
	"coursestore/middleware"
	"coursestore/routes"
	"coursestore/services/catalog"
	"coursestore/services/ledger"
	"coursestore/services/order"
	"coursestore/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	var cacheClient *redis.Client
	if config.AppConfig.CacheEnabled {
		cacheClient = utils.GetCacheClient()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLoggerMiddleware(logger))
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	lessonRepo := lessonRepoPkg.NewMongoLessonRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()

	// services.
	seatLedger := &ledger.DefaultSeatLedger{
		Repo:        lessonRepo,
		CacheClient: cacheClient,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:        lessonRepo,
		CacheClient: cacheClient,
	}
	orderService := &order.DefaultOrderService{
		Repo:       orderRepo,
		LessonRepo: lessonRepo,
		Ledger:     seatLedger,
	}

	// Bootstrap the catalog on an empty store.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 15*time.Second)
	inserted, err := catalogService.SeedIfEmpty(seedCtx)
	seedCancel()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to seed catalog: %v", err)
	}
	if inserted > 0 {
		logger.Sugar().Infof("main: seeded catalog with %d lessons", inserted)
	}

	lessonHandler := handlers.NewLessonHandler(catalogService, seatLedger)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListLessonsHandler:       lessonHandler.ListLessonsHandler,
		UpdateLessonSeatsHandler: lessonHandler.UpdateLessonSeatsHandler,
		SearchLessonsHandler:     lessonHandler.SearchLessonsHandler,
		ReseedCatalogHandler:     lessonHandler.ReseedCatalogHandler,
		CreateOrderHandler:       orderHandler.CreateOrderHandler,
		ListOrdersHandler:        orderHandler.ListOrdersHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(cacheClient, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
