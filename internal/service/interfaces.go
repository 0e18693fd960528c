package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/likelion-hsu/recipememo/backend/internal/model"
	"github.com/likelion-hsu/recipememo/backend/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, req *types.RecipeRequest, image *types.ImageUpload) (*model.Recipe, error)
	GetTitlesByCategory(ctx context.Context, category model.Category) (*types.RecipeListResponse, error)
	GetRecipeByCategoryAndID(ctx context.Context, category model.Category, id uuid.UUID) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.RecipeRequest, image *types.ImageUpload) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	SearchRecipesByTitle(ctx context.Context, title string) ([]types.RecipeTitleResponse, error)
	GetRecipesByFirebaseUID(ctx context.Context, firebaseUID string) ([]types.RecipeTitleResponse, error)
	GetRecipeByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
}
