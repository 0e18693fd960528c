package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/likelion-hsu/recipememo/backend/config"
	"github.com/likelion-hsu/recipememo/backend/internal/database"
	"github.com/likelion-hsu/recipememo/backend/internal/middleware"
	"github.com/likelion-hsu/recipememo/backend/internal/repository"
	"github.com/likelion-hsu/recipememo/backend/internal/server"
	"github.com/likelion-hsu/recipememo/backend/internal/service"
	"github.com/likelion-hsu/recipememo/backend/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	images, err := newImageStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Continue without rate limiting if Redis is not available
	var redisClient *redis.Client
	if client, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
	} else {
		redisClient = client
		defer redisClient.Close()
	}
	writeLimiter := middleware.NewRecipeWriteRateLimiter(redisClient, cfg.RateLimitPerHour)

	recipeService := service.NewRecipeService(repository.NewRecipeRepository(db), images)
	srv := server.New(cfg, db, recipeService, images, writeLimiter)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

func newImageStore(cfg *config.Config) (storage.ImageStore, error) {
	if cfg.ImageStorage == "s3" {
		s3Config, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("Storing images in S3 bucket %s", cfg.S3BucketName)
		return storage.NewS3ImageStore(s3Config), nil
	}
	log.Printf("Storing images in %s", cfg.UploadDir)
	return storage.NewLocalImageStore(cfg.UploadDir), nil
}
