package repository

import (
	"context"

	"procook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRepository handles database operations for ratings
type RatingRepository struct {
	db *gorm.DB
}

var _ RatingRepositoryInterface = (*RatingRepository)(nil)

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

type summaryRow struct {
	RecipeID uuid.UUID
	Average  float64
	Count    int64
}

// Upsert creates the (recipe, user) rating or overwrites its value.
// The unique index on (recipe_id, user_id) arbitrates concurrent writers.
func (r *RatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	now := dbNow()
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	rating.CreatedAt = now
	rating.UpdatedAt = now

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		Create(rating).Error
}

// GetByRecipeAndUser retrieves one user's rating of a recipe
func (r *RatingRepository) GetByRecipeAndUser(ctx context.Context, recipeID, userID uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// DeleteByRecipeAndUser removes one user's rating of a recipe
func (r *RatingRepository) DeleteByRecipeAndUser(ctx context.Context, recipeID, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&models.Rating{})
	return result.RowsAffected, result.Error
}

// Summary computes the unrounded mean and count of a recipe's ratings
func (r *RatingRepository) Summary(ctx context.Context, recipeID uuid.UUID) (*models.RatingSummary, error) {
	var row summaryRow
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0)::float8 AS average, COUNT(*) AS count").
		Where("recipe_id = ?", recipeID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &models.RatingSummary{RecipeID: recipeID, Average: row.Average, Count: row.Count}, nil
}

// Summaries computes summaries for several recipes at once. Recipes without
// ratings are absent from the result.
func (r *RatingRepository) Summaries(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]models.RatingSummary, error) {
	result := make(map[uuid.UUID]models.RatingSummary, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}

	var rows []summaryRow
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("recipe_id, AVG(rating)::float8 AS average, COUNT(*) AS count").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.RecipeID] = models.RatingSummary{RecipeID: row.RecipeID, Average: row.Average, Count: row.Count}
	}
	return result, nil
}

// DeleteByRecipes removes every rating of the given recipes
func (r *RatingRepository) DeleteByRecipes(ctx context.Context, recipeIDs []uuid.UUID) error {
	if len(recipeIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("recipe_id IN ?", recipeIDs).Delete(&models.Rating{}).Error
}

// DeleteByUser removes every rating a user gave
func (r *RatingRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Rating{}).Error
}

// ClearUser detaches a user's ratings from them; the values keep counting
func (r *RatingRepository) ClearUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("user_id = ?", userID).
		UpdateColumn("user_id", nil)
	return result.RowsAffected, result.Error
}
