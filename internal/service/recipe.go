package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/likelion-hsu/recipememo/backend/internal/model"
	"github.com/likelion-hsu/recipememo/backend/internal/repository"
	"github.com/likelion-hsu/recipememo/backend/internal/storage"
	"github.com/likelion-hsu/recipememo/backend/internal/types"
)

var (
	// ErrNotFound is returned when no recipe matches the lookup.
	ErrNotFound = errors.New("recipe not found")
	// ErrIOFailure is returned when an image could not be stored.
	ErrIOFailure = errors.New("image storage failure")
	// ErrMissingOwner is returned when a recipe is created without a firebase uid.
	ErrMissingOwner = errors.New("firebaseUid is required")
)

// RecipeService handles recipe operations
type RecipeService struct {
	repo   repository.RecipeRepository
	images storage.ImageStore
}

// Ensure RecipeService implements IRecipeService
var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(repo repository.RecipeRepository, images storage.ImageStore) *RecipeService {
	return &RecipeService{
		repo:   repo,
		images: images,
	}
}

// CreateRecipe stores the optional image, then persists a new recipe built from req.
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.RecipeRequest, image *types.ImageUpload) (*model.Recipe, error) {
	category, err := model.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	if req.FirebaseUID == "" {
		return nil, ErrMissingOwner
	}

	recipe := &model.Recipe{FirebaseUID: req.FirebaseUID}
	applyRequest(recipe, req, category)

	imageURL, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}
	if imageURL != "" {
		recipe.ImageURL = &imageURL
	}

	saved, err := s.repo.Save(ctx, recipe)
	if err != nil {
		s.discardImage(ctx, imageURL)
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}

	log.Printf("[RecipeService] Created recipe %s in %s", saved.ID, category)
	return saved, nil
}

// GetTitlesByCategory lists the title views of every recipe in category.
func (s *RecipeService) GetTitlesByCategory(ctx context.Context, category model.Category) (*types.RecipeListResponse, error) {
	recipes, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return &types.RecipeListResponse{
		Category: category.DisplayName(),
		Recipes:  types.NewRecipeTitleResponses(recipes),
	}, nil
}

// GetRecipeByCategoryAndID returns the recipe only when it belongs to category.
func (s *RecipeService) GetRecipeByCategoryAndID(ctx context.Context, category model.Category, id uuid.UUID) (*model.Recipe, error) {
	recipe, err := s.repo.FindByIDAndCategory(ctx, id, category)
	if err != nil {
		return nil, translateLookupError(err)
	}
	return recipe, nil
}

// UpdateRecipe overwrites every field of the recipe except its id and owner.
// The image URL changes only when a new image is supplied; the previous file is kept.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.RecipeRequest, image *types.ImageUpload) (*model.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err)
	}

	category, err := model.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	applyRequest(recipe, req, category)

	imageURL, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}
	if imageURL != "" {
		recipe.ImageURL = &imageURL
	}

	saved, err := s.repo.Save(ctx, recipe)
	if err != nil {
		s.discardImage(ctx, imageURL)
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	log.Printf("[RecipeService] Updated recipe %s", saved.ID)
	return saved, nil
}

// DeleteRecipe removes the recipe. Its image file, if any, is left in place.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translateLookupError(err)
	}
	if err := s.repo.Delete(ctx, recipe); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	log.Printf("[RecipeService] Deleted recipe %s", id)
	return nil
}

// SearchRecipesByTitle matches title substrings case-insensitively across all categories.
func (s *RecipeService) SearchRecipesByTitle(ctx context.Context, title string) ([]types.RecipeTitleResponse, error) {
	recipes, err := s.repo.FindByTitleContainingIgnoreCase(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	return types.NewRecipeTitleResponses(recipes), nil
}

// GetRecipesByFirebaseUID lists the title views of every recipe owned by firebaseUID.
func (s *RecipeService) GetRecipesByFirebaseUID(ctx context.Context, firebaseUID string) ([]types.RecipeTitleResponse, error) {
	recipes, err := s.repo.FindByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return types.NewRecipeTitleResponses(recipes), nil
}

// GetRecipeByID retrieves a recipe by ID
func (s *RecipeService) GetRecipeByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err)
	}
	return recipe, nil
}

// storeImage returns "" when no image was supplied.
func (s *RecipeService) storeImage(ctx context.Context, image *types.ImageUpload) (string, error) {
	if !image.Present() {
		return "", nil
	}
	url, err := s.images.Store(ctx, image.Filename, image.Content)
	if err != nil {
		log.Printf("[RecipeService] Failed to store image %q: %v", image.Filename, err)
		return "", fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return url, nil
}

// discardImage removes an image written for a commit that did not happen.
func (s *RecipeService) discardImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.images.Delete(context.WithoutCancel(ctx), url); err != nil {
		log.Printf("[RecipeService] Failed to remove orphaned image %s: %v", url, err)
	}
}

func applyRequest(recipe *model.Recipe, req *types.RecipeRequest, category model.Category) {
	recipe.Title = req.Title
	recipe.Category = category
	recipe.CookingTime = req.CookingTime
	recipe.Difficulty = req.Difficulty
	recipe.Content = req.Content
	recipe.Ingredients = copyList(req.Ingredients)
	recipe.Steps = copyList(req.Steps)
}

func copyList(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func translateLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
