package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is a single recipe memo. Ingredients and Steps are kept in their own
// child tables and are loaded by the repository in position order.
type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Title       string    `gorm:"size:255" json:"title"`
	Category    Category  `gorm:"size:20;not null;index" json:"category"`
	CookingTime string    `gorm:"size:100" json:"cookingTime"`
	Difficulty  string    `gorm:"size:50" json:"difficulty"`
	Content     string    `gorm:"type:text" json:"content"`
	ImageURL    *string   `gorm:"size:512" json:"imageUrl"`
	FirebaseUID string    `gorm:"size:128;not null;index" json:"firebaseUid"`
	Ingredients []string  `gorm:"-" json:"ingredients"`
	Steps       []string  `gorm:"-" json:"steps"`
}

// BeforeCreate assigns the identifier on first insert.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeIngredient is one ordered ingredient line of a recipe.
type RecipeIngredient struct {
	ID       uint      `gorm:"primaryKey"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index:idx_recipe_ingredients_order,priority:1"`
	Position int       `gorm:"not null;index:idx_recipe_ingredients_order,priority:2"`
	Value    string    `gorm:"type:text;not null"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// RecipeStep is one ordered cooking step of a recipe.
type RecipeStep struct {
	ID       uint      `gorm:"primaryKey"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index:idx_recipe_steps_order,priority:1"`
	Position int       `gorm:"not null;index:idx_recipe_steps_order,priority:2"`
	Value    string    `gorm:"type:text;not null"`
}

func (RecipeStep) TableName() string {
	return "recipe_steps"
}

// AllModels lists every table managed by the service, parents first.
func AllModels() []interface{} {
	return []interface{}{
		&Recipe{},
		&RecipeIngredient{},
		&RecipeStep{},
	}
}
