package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"frontdesk/config"
	"frontdesk/jobs"
	"frontdesk/routes"
	"frontdesk/services"
	"frontdesk/services/logger"
	"frontdesk/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	dataSource := services.NewGormDataSource(services.GormDataSourceOptions{
		DB:     config.DB,
		Redis:  config.RedisClient,
		Logger: appLogger,
	})
	store := services.NewSnapshotStore(services.SnapshotStoreOptions{
		Source:   dataSource,
		Logger:   appLogger,
		Notifier: notification.NewMelodyService(m),
	})

	// First snapshot before serving; the loading guard covers failures.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.Refresh(ctx); err != nil {
		log.Printf("Warning: initial snapshot load failed, timeline will report loading: %v", err)
	}
	cancel()

	jobs.SetTimelineRefresher(store)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, store, config.RedisClient)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
