package repository

import (
	"context"
	"time"

	"procook-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Store groups the repositories bound to one connection or transaction
type Store interface {
	Users() UserRepositoryInterface
	Recipes() RecipeRepositoryInterface
	Comments() CommentRepositoryInterface
	Ratings() RatingRepositoryInterface
	SavedRecipes() SavedRecipeRepositoryInterface
	// Transaction runs fn against a Store bound to a single transaction.
	// Returning an error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	GetStats(ctx context.Context, id uuid.UUID) (*models.UserStats, error)
	Count(ctx context.Context) (int64, error)
}

// RecipeRepositoryInterface defines the interface for recipe repository operations
type RecipeRepositoryInterface interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	List(ctx context.Context, limit, offset int) ([]models.Recipe, int64, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]models.Recipe, int64, error)
	GetIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	GetImagesByOwner(ctx context.Context, ownerID uuid.UUID) ([]string, error)
	Update(ctx context.Context, recipe *models.Recipe, expectedUpdatedAt *time.Time) error
	ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, ingredients []models.Ingredient) error
	Delete(ctx context.Context, ids ...uuid.UUID) error
	ClearOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByRecipeAndID(ctx context.Context, recipeID, id uuid.UUID) (*models.Comment, error)
	ListThreads(ctx context.Context, recipeID uuid.UUID) ([]models.Comment, error)
	UpdateBody(ctx context.Context, id uuid.UUID, body string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByRecipes(ctx context.Context, recipeIDs []uuid.UUID) error
	DeleteByAuthor(ctx context.Context, userID uuid.UUID) error
	ClearAuthor(ctx context.Context, userID uuid.UUID) (int64, error)
}

// RatingRepositoryInterface defines the interface for rating repository operations
type RatingRepositoryInterface interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	GetByRecipeAndUser(ctx context.Context, recipeID, userID uuid.UUID) (*models.Rating, error)
	DeleteByRecipeAndUser(ctx context.Context, recipeID, userID uuid.UUID) (int64, error)
	Summary(ctx context.Context, recipeID uuid.UUID) (*models.RatingSummary, error)
	Summaries(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]models.RatingSummary, error)
	DeleteByRecipes(ctx context.Context, recipeIDs []uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	ClearUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// SavedRecipeRepositoryInterface defines the interface for saved-recipe repository operations
type SavedRecipeRepositoryInterface interface {
	Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	Toggle(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	ListRecipes(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Recipe, int64, error)
	DeleteByRecipes(ctx context.Context, recipeIDs []uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
