package models

import (
	"github.com/google/uuid"
)

// Rating is unique per (recipe, user); the unique index is what guards upserts
type Rating struct {
	BaseModel
	RecipeID uuid.UUID  `json:"recipe_id" gorm:"type:uuid;not null;uniqueIndex:uq_ratings_recipe_user"`
	Recipe   *Recipe    `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	UserID   *uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex:uq_ratings_recipe_user"`
	User     *User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Value    int16      `json:"rating" gorm:"column:rating;type:smallint;not null;check:chk_ratings_value,rating BETWEEN 1 AND 5"`
}

// TableName returns the table name for Rating
func (Rating) TableName() string {
	return "ratings"
}

// RatingSummary is the derived aggregate for one recipe
type RatingSummary struct {
	RecipeID uuid.UUID `json:"-"`
	Average  float64   `json:"averageRating"`
	Count    int64     `json:"ratingsCount"`
}
