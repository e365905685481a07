package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SessionTerminator ends the caller's authenticated session. Account deletion
// calls it once the deletion has committed.
type SessionTerminator interface {
	InvalidateSession() error
}

// RecipeServiceInterface defines the interface for recipe service
type RecipeServiceInterface interface {
	List(ctx context.Context, limit int) ([]RecipeResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*RecipeResponse, error)
	ListByOwner(ctx context.Context, principal uuid.UUID, limit, offset int) ([]RecipeResponse, int64, error)
	Create(ctx context.Context, principal uuid.UUID, input *RecipeInput) (*RecipeResponse, error)
	Replace(ctx context.Context, principal, id uuid.UUID, input *RecipeInput) (*RecipeResponse, error)
	Delete(ctx context.Context, principal, id uuid.UUID) error
}

// CommentServiceInterface defines the interface for comment service
type CommentServiceInterface interface {
	ListForRecipe(ctx context.Context, recipeID uuid.UUID) ([]CommentResponse, error)
	Create(ctx context.Context, principal, recipeID uuid.UUID, req *CreateCommentRequest) (*CommentResponse, error)
	Update(ctx context.Context, principal, recipeID, commentID uuid.UUID, req *UpdateCommentRequest) (*CommentResponse, error)
	Delete(ctx context.Context, principal, recipeID, commentID uuid.UUID) error
}

// RatingServiceInterface defines the interface for rating service
type RatingServiceInterface interface {
	Upsert(ctx context.Context, principal, recipeID uuid.UUID, req *RatingRequest) (*RatingSubmitResponse, error)
	Get(ctx context.Context, principal, recipeID uuid.UUID) (*UserRatingResponse, error)
	GetPublic(ctx context.Context, recipeID uuid.UUID) (*PublicRatingResponse, error)
	Delete(ctx context.Context, principal, recipeID uuid.UUID) (*RatingSummaryResponse, error)
}

// SavedRecipeServiceInterface defines the interface for saved recipe service
type SavedRecipeServiceInterface interface {
	List(ctx context.Context, principal uuid.UUID, limit, offset int) ([]RecipeResponse, int64, error)
	IsSaved(ctx context.Context, principal, recipeID uuid.UUID) (bool, error)
	Toggle(ctx context.Context, principal, recipeID uuid.UUID) (bool, error)
}

// AccountServiceInterface defines the interface for account service
type AccountServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*UserResponse, error)
	CurrentUser(ctx context.Context, principal uuid.UUID) (*UserResponse, error)
	Profile(ctx context.Context, principal uuid.UUID) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, principal uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error)
	ChangePassword(ctx context.Context, principal uuid.UUID, req *ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, principal uuid.UUID, req *DeleteAccountRequest, session SessionTerminator) error
}
