package service

import (
	"context"
	"errors"
	"fmt"

	"procook-backend/internal/database/models"
	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnershipLedger answers who may change what. Owner and author references are
// weak: they may be absent after a keep_data account deletion, and an absent
// owner matches no principal.
type OwnershipLedger struct{}

// OwnsRecipe reports whether principal owns recipe
func (OwnershipLedger) OwnsRecipe(principal uuid.UUID, recipe *models.Recipe) bool {
	return principal != uuid.Nil && recipe.UserID != nil && *recipe.UserID == principal
}

// AuthoredComment reports whether principal wrote comment
func (OwnershipLedger) AuthoredComment(principal uuid.UUID, comment *models.Comment) bool {
	return principal != uuid.Nil && comment.UserID != nil && *comment.UserID == principal
}

// Detach clears the user's owner and author references on recipes, comments
// and ratings so the content outlives the account.
func (OwnershipLedger) Detach(ctx context.Context, tx repository.Store, userID uuid.UUID) error {
	if _, err := tx.Recipes().ClearOwner(ctx, userID); err != nil {
		return fmt.Errorf("failed to detach recipes: %w", err)
	}
	if _, err := tx.Comments().ClearAuthor(ctx, userID); err != nil {
		return fmt.Errorf("failed to detach comments: %w", err)
	}
	if _, err := tx.Ratings().ClearUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to detach ratings: %w", err)
	}
	return nil
}

func requirePrincipal(principal uuid.UUID) error {
	if principal == uuid.Nil {
		return apperrors.ErrUnauthenticated
	}
	return nil
}

// loadRecipe fetches a recipe and maps a missing row to ErrRecipeNotFound
func loadRecipe(ctx context.Context, store repository.Store, id uuid.UUID) (*models.Recipe, error) {
	recipe, err := store.Recipes().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}
