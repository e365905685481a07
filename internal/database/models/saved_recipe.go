package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedRecipe is the (user, recipe) membership behind a user's saved collection
type SavedRecipe struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uq_saved_recipes_user_recipe"`
	User      *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RecipeID  uuid.UUID `json:"recipe_id" gorm:"type:uuid;not null;uniqueIndex:uq_saved_recipes_user_recipe;index"`
	Recipe    *Recipe   `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for SavedRecipe
func (SavedRecipe) TableName() string {
	return "saved_recipes"
}
