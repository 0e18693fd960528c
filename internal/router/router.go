package router

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/likelion-hsu/recipememo/backend/config"
	"github.com/likelion-hsu/recipememo/backend/internal/api"
	"github.com/likelion-hsu/recipememo/backend/internal/middleware"
	"github.com/likelion-hsu/recipememo/backend/internal/service"
	"github.com/likelion-hsu/recipememo/backend/internal/storage"
)

const presignExpiration = 15 * time.Minute

// Presigner hands out temporary download URLs for stored image names.
type Presigner interface {
	PresignedURL(ctx context.Context, name string, expiration time.Duration) (string, error)
}

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	db *gorm.DB,
	recipeService service.IRecipeService,
	images storage.ImageStore,
	writeLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()
	router.MaxMultipartMemory = 8 << 20

	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.ErrorHandler())

	api.RegisterRoutes(router, db, recipeService, writeLimiter, cfg.MaxUploadSize)
	RegisterUploads(router, images)

	return router
}

// RegisterUploads serves /uploads/<name>. Local images are served from disk;
// object-store images redirect to a presigned URL.
func RegisterUploads(router *gin.Engine, images storage.ImageStore) {
	switch store := images.(type) {
	case *storage.LocalImageStore:
		router.Static("/uploads", store.Dir())
	case Presigner:
		router.GET("/uploads/:name", presignedRedirect(store))
	default:
		log.Printf("[Router] Image store %T cannot serve uploads", images)
	}
}

func presignedRedirect(p Presigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		url, err := p.PresignedURL(c.Request.Context(), c.Param("name"), presignExpiration)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidImageURL) {
				middleware.AbortWithError(c, http.StatusNotFound, "not_found", "image not found")
				return
			}
			log.Printf("[Router] Failed to presign %s: %v", c.Param("name"), err)
			middleware.AbortWithError(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, url)
	}
}
