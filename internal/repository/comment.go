package repository

import (
	"context"

	"procook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *gorm.DB
}

var _ CommentRepositoryInterface = (*CommentRepository)(nil)

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	now := dbNow()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	return r.db.WithContext(ctx).Create(comment).Error
}

// GetByRecipeAndID retrieves a comment scoped to its recipe, with its author
func (r *CommentRepository) GetByRecipeAndID(ctx context.Context, recipeID, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListThreads returns root comments newest first, each with its replies oldest first
func (r *CommentRepository) ListThreads(ctx context.Context, recipeID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Replies.User").
		Where("recipe_id = ? AND parent_id IS NULL", recipeID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// UpdateBody replaces the text of a comment
func (r *CommentRepository) UpdateBody(ctx context.Context, id uuid.UUID, body string) error {
	result := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"comment": body, "updated_at": dbNow()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a comment and its replies
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("parent_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&models.Comment{}).Error
}

// DeleteByRecipes removes every comment on the given recipes
func (r *CommentRepository) DeleteByRecipes(ctx context.Context, recipeIDs []uuid.UUID) error {
	if len(recipeIDs) == 0 {
		return nil
	}
	db := r.db.WithContext(ctx)
	if err := db.Where("recipe_id IN ? AND parent_id IS NOT NULL", recipeIDs).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return db.Where("recipe_id IN ?", recipeIDs).Delete(&models.Comment{}).Error
}

// DeleteByAuthor removes a user's comments along with any replies to them,
// whoever wrote those replies
func (r *CommentRepository) DeleteByAuthor(ctx context.Context, userID uuid.UUID) error {
	db := r.db.WithContext(ctx)
	authored := db.Model(&models.Comment{}).Select("id").Where("user_id = ?", userID)
	if err := db.Where("parent_id IN (?)", authored).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return db.Where("user_id = ?", userID).Delete(&models.Comment{}).Error
}

// ClearAuthor detaches a user's comments from them
func (r *CommentRepository) ClearAuthor(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("user_id = ?", userID).
		UpdateColumn("user_id", nil)
	return result.RowsAffected, result.Error
}
