package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/likelion-hsu/recipememo/backend/internal/model"
)

// RecipeRepository defines the storage operations for recipes.
// Lookups of a single recipe return gorm.ErrRecordNotFound when nothing matches.
type RecipeRepository interface {
	FindByCategory(ctx context.Context, category model.Category) ([]*model.Recipe, error)
	FindByIDAndCategory(ctx context.Context, id uuid.UUID, category model.Category) (*model.Recipe, error)
	FindByTitleContainingIgnoreCase(ctx context.Context, title string) ([]*model.Recipe, error)
	FindByFirebaseUID(ctx context.Context, firebaseUID string) ([]*model.Recipe, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	Save(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	Delete(ctx context.Context, recipe *model.Recipe) error
}

// GormRecipeRepository stores recipes in a relational database through gorm.
type GormRecipeRepository struct {
	db *gorm.DB
}

// Ensure GormRecipeRepository implements RecipeRepository
var _ RecipeRepository = (*GormRecipeRepository)(nil)

// NewRecipeRepository creates a new GormRecipeRepository instance
func NewRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// FindByCategory returns every recipe of the category in storage order.
func (r *GormRecipeRepository) FindByCategory(ctx context.Context, category model.Category) ([]*model.Recipe, error) {
	return r.findMany(ctx, r.db.WithContext(ctx).Where("category = ?", category))
}

// FindByIDAndCategory returns the recipe only if both the id and the category match.
func (r *GormRecipeRepository) FindByIDAndCategory(ctx context.Context, id uuid.UUID, category model.Category) (*model.Recipe, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Where("id = ? AND category = ?", id, category))
}

// FindByTitleContainingIgnoreCase matches title substrings regardless of case.
// An empty substring matches every recipe.
func (r *GormRecipeRepository) FindByTitleContainingIgnoreCase(ctx context.Context, title string) ([]*model.Recipe, error) {
	query := r.db.WithContext(ctx)
	if title != "" {
		// both sides go through the database's LOWER so folding rules agree
		query = query.Where("LOWER(title) LIKE LOWER(?) ESCAPE '!'", "%"+escapeLike(title)+"%")
	}
	return r.findMany(ctx, query)
}

// FindByFirebaseUID returns all recipes owned by the given uid.
func (r *GormRecipeRepository) FindByFirebaseUID(ctx context.Context, firebaseUID string) ([]*model.Recipe, error) {
	return r.findMany(ctx, r.db.WithContext(ctx).Where("firebase_uid = ?", firebaseUID))
}

// FindByID returns the recipe with the given id.
func (r *GormRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Where("id = ?", id))
}

// Save inserts a new recipe or fully replaces an existing one, rewriting its
// ingredient and step rows in order.
func (r *GormRecipeRepository) Save(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if recipe.ID == uuid.Nil {
			if err := tx.Create(recipe).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Save(recipe).Error; err != nil {
				return err
			}
			if err := deleteChildren(tx, recipe.ID); err != nil {
				return err
			}
		}

		if len(recipe.Ingredients) > 0 {
			rows := make([]model.RecipeIngredient, len(recipe.Ingredients))
			for i, v := range recipe.Ingredients {
				rows[i] = model.RecipeIngredient{RecipeID: recipe.ID, Position: i, Value: v}
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if len(recipe.Steps) > 0 {
			rows := make([]model.RecipeStep, len(recipe.Steps))
			for i, v := range recipe.Steps {
				rows[i] = model.RecipeStep{RecipeID: recipe.ID, Position: i, Value: v}
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete removes the recipe together with its ingredient and step rows.
func (r *GormRecipeRepository) Delete(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteChildren(tx, recipe.ID); err != nil {
			return err
		}
		return tx.Delete(&model.Recipe{}, "id = ?", recipe.ID).Error
	})
}

func (r *GormRecipeRepository) findOne(ctx context.Context, query *gorm.DB) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := query.First(&recipe).Error; err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, []*model.Recipe{&recipe}); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *GormRecipeRepository) findMany(ctx context.Context, query *gorm.DB) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	// Convert to []*model.Recipe
	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	if err := r.loadChildren(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// loadChildren fills Ingredients and Steps for all recipes with one query per child table.
func (r *GormRecipeRepository) loadChildren(ctx context.Context, recipes []*model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(recipes))
	byID := make(map[uuid.UUID]*model.Recipe, len(recipes))
	for i, recipe := range recipes {
		ids[i] = recipe.ID
		byID[recipe.ID] = recipe
		recipe.Ingredients = []string{}
		recipe.Steps = []string{}
	}

	var ingredients []model.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id IN ?", ids).
		Order("recipe_id, position").
		Find(&ingredients).Error; err != nil {
		return err
	}
	for _, row := range ingredients {
		if recipe, ok := byID[row.RecipeID]; ok {
			recipe.Ingredients = append(recipe.Ingredients, row.Value)
		}
	}

	var steps []model.RecipeStep
	if err := r.db.WithContext(ctx).
		Where("recipe_id IN ?", ids).
		Order("recipe_id, position").
		Find(&steps).Error; err != nil {
		return err
	}
	for _, row := range steps {
		if recipe, ok := byID[row.RecipeID]; ok {
			recipe.Steps = append(recipe.Steps, row.Value)
		}
	}
	return nil
}

func deleteChildren(tx *gorm.DB, recipeID uuid.UUID) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}).Error; err != nil {
		return err
	}
	return tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeStep{}).Error
}

// escapeLike escapes LIKE wildcards using '!' as the escape character.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
