package repository

import (
	"context"

	"procook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavedRecipeRepository handles database operations for saved recipes
type SavedRecipeRepository struct {
	db *gorm.DB
}

var _ SavedRecipeRepositoryInterface = (*SavedRecipeRepository)(nil)

// NewSavedRecipeRepository creates a new saved-recipe repository
func NewSavedRecipeRepository(db *gorm.DB) *SavedRecipeRepository {
	return &SavedRecipeRepository{db: db}
}

// Exists reports whether the user has the recipe saved
func (r *SavedRecipeRepository) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SavedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// Toggle flips membership and returns the state after the flip. Removal is
// attempted first; when nothing was removed the row is inserted, and an insert
// that loses a race against a concurrent save counts as saved.
func (r *SavedRecipeRepository) Toggle(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var saved bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.SavedRecipe{})
		if removed.Error != nil {
			return removed.Error
		}
		if removed.RowsAffected > 0 {
			saved = false
			return nil
		}

		now := dbNow()
		row := models.SavedRecipe{
			ID:        uuid.New(),
			UserID:    userID,
			RecipeID:  recipeID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
		saved = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return saved, nil
}

// ListRecipes returns the user's saved recipes, most recently saved first
func (r *SavedRecipeRepository) ListRecipes(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.SavedRecipe{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN saved_recipes ON saved_recipes.recipe_id = recipes.id").
		Where("saved_recipes.user_id = ?", userID).
		Order("saved_recipes.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// DeleteByRecipes removes every saved entry pointing at the given recipes
func (r *SavedRecipeRepository) DeleteByRecipes(ctx context.Context, recipeIDs []uuid.UUID) error {
	if len(recipeIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("recipe_id IN ?", recipeIDs).Delete(&models.SavedRecipe{}).Error
}

// DeleteByUser empties a user's saved collection
func (r *SavedRecipeRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.SavedRecipe{}).Error
}
