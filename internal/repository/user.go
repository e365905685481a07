package repository

import (
	"context"

	"procook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by (lowercased) email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update writes name, email and password hash
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Model(user).
		Select("name", "email", "password", "updated_at").
		Updates(user).Error
}

// Delete removes the user row and reports how many rows went away
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// GetStats counts the user's recipes, comments, ratings and saved recipes
func (r *UserRepository) GetStats(ctx context.Context, id uuid.UUID) (*models.UserStats, error) {
	var stats models.UserStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM recipes WHERE user_id = @id)       AS recipes_count,
			(SELECT COUNT(*) FROM comments WHERE user_id = @id)      AS comments_count,
			(SELECT COUNT(*) FROM ratings WHERE user_id = @id)       AS ratings_count,
			(SELECT COUNT(*) FROM saved_recipes WHERE user_id = @id) AS saved_count`,
		map[string]interface{}{"id": id},
	).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Count returns the number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error
	return total, err
}
