package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a gorm handle
type GormStore struct {
	db           *gorm.DB
	users        *UserRepository
	recipes      *RecipeRepository
	comments     *CommentRepository
	ratings      *RatingRepository
	savedRecipes *SavedRecipeRepository
}

var _ Store = (*GormStore)(nil)

// NewStore creates a store whose repositories share db
func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:           db,
		users:        NewUserRepository(db),
		recipes:      NewRecipeRepository(db),
		comments:     NewCommentRepository(db),
		ratings:      NewRatingRepository(db),
		savedRecipes: NewSavedRecipeRepository(db),
	}
}

func (s *GormStore) Users() UserRepositoryInterface               { return s.users }
func (s *GormStore) Recipes() RecipeRepositoryInterface           { return s.recipes }
func (s *GormStore) Comments() CommentRepositoryInterface         { return s.comments }
func (s *GormStore) Ratings() RatingRepositoryInterface           { return s.ratings }
func (s *GormStore) SavedRecipes() SavedRecipeRepositoryInterface { return s.savedRecipes }

// Transaction runs fn in a database transaction. Nested calls become savepoints.
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
