package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/likelion-hsu/recipememo/backend/internal/middleware"
	"github.com/likelion-hsu/recipememo/backend/internal/service"
)

// RegisterRoutes mounts the health and recipe endpoints under /api.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, recipeService service.IRecipeService, writeLimiter *middleware.RateLimiter, maxUploadSize int64) {
	api := router.Group("/api")

	NewHealthHandler(db).RegisterRoutes(api)
	NewRecipeHandler(recipeService, writeLimiter, maxUploadSize).RegisterRoutes(api)
}
