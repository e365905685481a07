package repository

import (
	"context"
	"time"

	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository handles database operations for recipes and their ingredients
type RecipeRepository struct {
	db *gorm.DB
}

var _ RecipeRepositoryInterface = (*RecipeRepository)(nil)

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Postgres keeps microseconds; the in-memory value must match what a client echoes back.
func dbNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func orderedIngredients(db *gorm.DB) *gorm.DB {
	return db.Order("ingredients.position ASC")
}

// Create inserts the recipe together with its ingredients
func (r *RecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	now := dbNow()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	for i := range recipe.Ingredients {
		recipe.Ingredients[i].CreatedAt = now
		recipe.Ingredients[i].UpdatedAt = now
	}
	return r.db.WithContext(ctx).Create(recipe).Error
}

// GetByID retrieves a recipe without associations
func (r *RecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).First(&recipe, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetWithDetails retrieves a recipe with its owner and ordered ingredients
func (r *RecipeRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Ingredients", orderedIngredients).
		First(&recipe, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List retrieves recipes newest first
func (r *RecipeRepository) List(ctx context.Context, limit, offset int) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Recipe{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// GetByOwner retrieves the recipes of one owner with owner and ingredients
func (r *RecipeRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("user_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Ingredients", orderedIngredients).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// GetIDsByOwner returns the ids of every recipe the owner holds
func (r *RecipeRepository) GetIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("user_id = ?", ownerID).Pluck("id", &ids).Error
	return ids, err
}

// GetImagesByOwner returns the stored image paths of the owner's recipes
func (r *RecipeRepository) GetImagesByOwner(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	var images []string
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("user_id = ? AND image IS NOT NULL AND image <> ''", ownerID).
		Pluck("image", &images).Error
	return images, err
}

// Update overwrites the scalar fields of a recipe. When expectedUpdatedAt is set
// the write only applies if the stored row still carries that timestamp.
func (r *RecipeRepository) Update(ctx context.Context, recipe *models.Recipe, expectedUpdatedAt *time.Time) error {
	recipe.UpdatedAt = dbNow()

	query := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", recipe.ID)
	if expectedUpdatedAt != nil {
		query = query.Where("updated_at = ?", expectedUpdatedAt.UTC().Truncate(time.Microsecond))
	}

	result := query.Updates(map[string]interface{}{
		"title":             recipe.Title,
		"short_description": recipe.ShortDescription,
		"image":             recipe.Image,
		"cuisine_type":      recipe.CuisineType,
		"category":          recipe.Category,
		"prep_time":         recipe.PrepTime,
		"cook_time":         recipe.CookTime,
		"total_time":        recipe.TotalTime,
		"serving_size":      recipe.ServingSize,
		"preparation_notes": recipe.PreparationNotes,
		"updated_at":        recipe.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if expectedUpdatedAt != nil {
			return apperrors.ErrRecipeConflict
		}
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceIngredients swaps the whole ingredient list of a recipe
func (r *RecipeRepository) ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, ingredients []models.Ingredient) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("recipe_id = ?", recipeID).Delete(&models.Ingredient{}).Error; err != nil {
		return err
	}
	if len(ingredients) == 0 {
		return nil
	}

	now := dbNow()
	for i := range ingredients {
		ingredients[i].ID = uuid.Nil
		ingredients[i].RecipeID = recipeID
		ingredients[i].CreatedAt = now
		ingredients[i].UpdatedAt = now
	}
	return db.Create(&ingredients).Error
}

// Delete removes recipes and their ingredients
func (r *RecipeRepository) Delete(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	db := r.db.WithContext(ctx)
	if err := db.Where("recipe_id IN ?", ids).Delete(&models.Ingredient{}).Error; err != nil {
		return err
	}
	return db.Where("id IN ?", ids).Delete(&models.Recipe{}).Error
}

// ClearOwner detaches every recipe from its owner
func (r *RecipeRepository) ClearOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("user_id = ?", ownerID).
		UpdateColumn("user_id", nil)
	return result.RowsAffected, result.Error
}
