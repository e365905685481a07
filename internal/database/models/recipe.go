package models

import (
	"github.com/google/uuid"
)

// Recipe owns its ordered ingredient list. UserID is a weak reference and
// becomes NULL when the owner deletes the account with keep_data.
type Recipe struct {
	BaseModel
	UserID           *uuid.UUID   `json:"user_id" gorm:"type:uuid;index"`
	User             *User        `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Title            string       `json:"title" gorm:"not null;size:255"`
	ShortDescription string       `json:"short_description" gorm:"type:text;not null"`
	Image            *string      `json:"image" gorm:"size:255"`
	CuisineType      string       `json:"cuisine_type" gorm:"not null;size:100"`
	Category         string       `json:"category" gorm:"not null;size:100"`
	PrepTime         int          `json:"prep_time" gorm:"not null;check:chk_recipes_prep_time,prep_time BETWEEN 1 AND 1440"`
	CookTime         int          `json:"cook_time" gorm:"not null;check:chk_recipes_cook_time,cook_time BETWEEN 0 AND 1440"`
	TotalTime        int          `json:"total_time" gorm:"not null;check:chk_recipes_total_time,total_time = prep_time + cook_time"`
	ServingSize      int          `json:"serving_size" gorm:"not null;check:chk_recipes_serving_size,serving_size BETWEEN 1 AND 100"`
	PreparationNotes *string      `json:"preparation_notes" gorm:"type:text"`
	Ingredients      []Ingredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// Ingredient belongs to exactly one recipe. Position is dense from 1 within a recipe.
type Ingredient struct {
	BaseModel
	RecipeID           uuid.UUID `json:"recipe_id" gorm:"type:uuid;not null;uniqueIndex:idx_ingredients_recipe_position"`
	Name               string    `json:"name" gorm:"not null;size:255"`
	Measurement        string    `json:"measurement" gorm:"not null;size:100"`
	SubstitutionOption *string   `json:"substitution_option" gorm:"size:255"`
	AllergenInfo       *string   `json:"allergen_info" gorm:"size:255"`
	Position           int       `json:"order" gorm:"not null;uniqueIndex:idx_ingredients_recipe_position"`
}

// TableName returns the table name for Ingredient
func (Ingredient) TableName() string {
	return "ingredients"
}
