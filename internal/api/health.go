package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/likelion-hsu/recipememo/backend/internal/database"
)

const version = "1.0.0"

// HealthHandler reports process and database health.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	health := router.Group("/health")
	{
		health.GET("", h.HealthCheck)
		health.GET("/db", h.DatabaseHealth)
	}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "UP",
		"message":   "Recipe memo API is running",
		"version":   version,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// DatabaseHealth pings the database and answers 503 when it is unreachable.
func (h *HealthHandler) DatabaseHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{
		"timestamp": time.Now().Format(time.RFC3339),
		"database":  h.db.Dialector.Name(),
	}
	if err := database.HealthCheck(ctx, h.db); err != nil {
		body["status"] = "DOWN"
		body["message"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	body["status"] = "UP"
	c.JSON(http.StatusOK, body)
}
