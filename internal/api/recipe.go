package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/likelion-hsu/recipememo/backend/internal/middleware"
	"github.com/likelion-hsu/recipememo/backend/internal/model"
	"github.com/likelion-hsu/recipememo/backend/internal/service"
	"github.com/likelion-hsu/recipememo/backend/internal/types"
)

const (
	recipePart = "recipe"
	imagePart  = "imageFile"

	// multipart data beyond this is spooled to temporary files
	multipartMemory = 8 << 20
)

var errMissingRecipePart = errors.New("multipart part \"recipe\" is required")

// RecipeHandler exposes the recipe service over HTTP.
type RecipeHandler struct {
	recipeService service.IRecipeService
	writeLimiter  *middleware.RateLimiter
	maxUploadSize int64
}

// NewRecipeHandler creates a handler. writeLimiter may be nil.
func NewRecipeHandler(recipeService service.IRecipeService, writeLimiter *middleware.RateLimiter, maxUploadSize int64) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		writeLimiter:  writeLimiter,
		maxUploadSize: maxUploadSize,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("/health", h.Health)
		recipes.POST("", h.writeLimiter.RateLimitMiddleware(), h.CreateRecipe)
		recipes.GET("/category/:category", h.GetTitlesByCategory)
		recipes.GET("/category/:category/:id", h.GetRecipeByCategoryAndID)
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/user/:firebaseUid", h.GetRecipesByUser)
		recipes.PUT("/:id", h.writeLimiter.RateLimitMiddleware(), h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.GET("/:id", h.GetRecipeByID)
	}
}

// Health is the connectivity probe used by the frontend.
func (h *RecipeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Recipe memo API is running",
	})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	req, image, err := h.parseRecipeForm(c)
	if err != nil {
		h.abortFormError(c, err)
		return
	}
	defer closeImage(image)

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), req, image)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) GetTitlesByCategory(c *gin.Context) {
	category, ok := categoryParam(c)
	if !ok {
		return
	}

	list, err := h.recipeService.GetTitlesByCategory(c.Request.Context(), category)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *RecipeHandler) GetRecipeByCategoryAndID(c *gin.Context) {
	category, ok := categoryParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipeByCategoryAndID(c.Request.Context(), category, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	title, ok := c.GetQuery("title")
	if !ok {
		middleware.AbortWithError(c, http.StatusBadRequest, "bad_request", "query parameter \"title\" is required")
		return
	}

	results, err := h.recipeService.SearchRecipesByTitle(c.Request.Context(), title)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.RecipeSearchResponse{Results: nonNilTitles(results)})
}

func (h *RecipeHandler) GetRecipesByUser(c *gin.Context) {
	results, err := h.recipeService.GetRecipesByFirebaseUID(c.Request.Context(), c.Param("firebaseUid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNilTitles(results))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	req, image, err := h.parseRecipeForm(c)
	if err != nil {
		h.abortFormError(c, err)
		return
	}
	defer closeImage(image)

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, req, image)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) GetRecipeByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipeByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

// parseRecipeForm reads the "recipe" JSON part and the optional "imageFile"
// part. The recipe part may arrive as a plain field or as a file part.
func (h *RecipeHandler) parseRecipeForm(c *gin.Context) (*types.RecipeRequest, *types.ImageUpload, error) {
	if h.maxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)
	}
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		return nil, nil, err
	}
	form := c.Request.MultipartForm

	raw, err := recipeJSON(form)
	if err != nil {
		return nil, nil, err
	}

	var req types.RecipeRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, nil, fmt.Errorf("malformed recipe JSON: %w", err)
	}

	files := form.File[imagePart]
	if len(files) == 0 {
		return &req, nil, nil
	}
	header := files[0]
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &req, &types.ImageUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  f,
	}, nil
}

func closeImage(image *types.ImageUpload) {
	if err := image.Close(); err != nil {
		log.Printf("[RecipeHandler] Failed to close uploaded image: %v", err)
	}
}

func recipeJSON(form *multipart.Form) ([]byte, error) {
	if values := form.Value[recipePart]; len(values) > 0 {
		return []byte(values[0]), nil
	}
	if files := form.File[recipePart]; len(files) > 0 {
		f, err := files[0].Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return nil, errMissingRecipePart
}

func (h *RecipeHandler) abortFormError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		middleware.AbortWithError(c, http.StatusRequestEntityTooLarge, "payload_too_large",
			fmt.Sprintf("upload exceeds the limit of %d bytes", h.maxUploadSize))
		return
	}
	log.Printf("[RecipeHandler] Rejected recipe form: %v", err)
	middleware.AbortWithError(c, http.StatusBadRequest, "malformed_request", err.Error())
}

func categoryParam(c *gin.Context) (model.Category, bool) {
	category, err := model.ParseCategoryName(c.Param("category"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid_category", err.Error())
		return "", false
	}
	return category, true
}

func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid_id", "recipe id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCategory):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid_category", err.Error())
	case errors.Is(err, service.ErrMissingOwner):
		middleware.AbortWithError(c, http.StatusBadRequest, "malformed_request", err.Error())
	case errors.Is(err, service.ErrNotFound):
		middleware.AbortWithError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, service.ErrIOFailure):
		log.Printf("[RecipeHandler] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		middleware.AbortWithError(c, http.StatusInternalServerError, "io_failure", "failed to store image")
	default:
		log.Printf("[RecipeHandler] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		middleware.AbortWithError(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
	}
}

func nonNilTitles(results []types.RecipeTitleResponse) []types.RecipeTitleResponse {
	if results == nil {
		return []types.RecipeTitleResponse{}
	}
	return results
}
