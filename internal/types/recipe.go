package types

import (
	"github.com/google/uuid"

	"github.com/likelion-hsu/recipememo/backend/internal/model"
)

// RecipeResponse is the full recipe view. Category is the display label.
type RecipeResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	CookingTime string    `json:"cookingTime"`
	Difficulty  string    `json:"difficulty"`
	Ingredients []string  `json:"ingredients"`
	Content     string    `json:"content"`
	Steps       []string  `json:"steps"`
	ImageURL    *string   `json:"imageUrl"`
	FirebaseUID string    `json:"firebaseUid"`
}

// RecipeTitleResponse is the id/title/image projection used by list screens.
type RecipeTitleResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	ImageURL *string   `json:"imageUrl"`
}

// RecipeListResponse groups title views under a category display label.
type RecipeListResponse struct {
	Category string                `json:"category"`
	Recipes  []RecipeTitleResponse `json:"recipes"`
}

// RecipeSearchResponse wraps title search results.
type RecipeSearchResponse struct {
	Results []RecipeTitleResponse `json:"results"`
}

// NewRecipeResponse builds the full view of a recipe.
func NewRecipeResponse(r *model.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		Category:    r.Category.DisplayName(),
		CookingTime: r.CookingTime,
		Difficulty:  r.Difficulty,
		Ingredients: nonNil(r.Ingredients),
		Content:     r.Content,
		Steps:       nonNil(r.Steps),
		ImageURL:    r.ImageURL,
		FirebaseUID: r.FirebaseUID,
	}
}

// NewRecipeTitleResponse projects a recipe down to its title view.
func NewRecipeTitleResponse(r *model.Recipe) RecipeTitleResponse {
	return RecipeTitleResponse{
		ID:       r.ID,
		Title:    r.Title,
		ImageURL: r.ImageURL,
	}
}

// NewRecipeTitleResponses projects every recipe, keeping order.
func NewRecipeTitleResponses(recipes []*model.Recipe) []RecipeTitleResponse {
	result := make([]RecipeTitleResponse, len(recipes))
	for i, r := range recipes {
		result[i] = NewRecipeTitleResponse(r)
	}
	return result
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
