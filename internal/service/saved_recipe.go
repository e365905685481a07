package service

import (
	"context"
	"fmt"

	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/logger"
	"procook-backend/internal/repository"
	"procook-backend/internal/storage"

	"github.com/google/uuid"
)

// SavedRecipeService manages a user's saved recipe collection
type SavedRecipeService struct {
	store     repository.Store
	presenter recipePresenter
}

// NewSavedRecipeService creates a new saved recipe service
func NewSavedRecipeService(store repository.Store, assets storage.AssetStore) *SavedRecipeService {
	return &SavedRecipeService{
		store:     store,
		presenter: recipePresenter{assets: assets},
	}
}

// List returns the recipes principal saved, most recently saved first
func (s *SavedRecipeService) List(ctx context.Context, principal uuid.UUID, limit, offset int) ([]RecipeResponse, int64, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, 0, err
	}
	if offset < 0 {
		offset = 0
	}

	recipes, total, err := s.store.SavedRecipes().ListRecipes(ctx, principal, clampLimit(limit), offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list saved recipes: %w", err)
	}
	out, err := s.presenter.present(ctx, s.store.Ratings(), recipes, false)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// IsSaved reports whether principal saved the recipe
func (s *SavedRecipeService) IsSaved(ctx context.Context, principal, recipeID uuid.UUID) (bool, error) {
	if err := requirePrincipal(principal); err != nil {
		return false, err
	}
	if _, err := loadRecipe(ctx, s.store, recipeID); err != nil {
		return false, err
	}

	saved, err := s.store.SavedRecipes().Exists(ctx, principal, recipeID)
	if err != nil {
		return false, fmt.Errorf("failed to check saved recipe: %w", err)
	}
	return saved, nil
}

// Toggle flips membership of the recipe in principal's collection and reports
// whether it is saved afterwards
func (s *SavedRecipeService) Toggle(ctx context.Context, principal, recipeID uuid.UUID) (bool, error) {
	if err := requirePrincipal(principal); err != nil {
		return false, err
	}
	if _, err := loadRecipe(ctx, s.store, recipeID); err != nil {
		return false, err
	}

	saved, err := s.store.SavedRecipes().Toggle(ctx, principal, recipeID)
	if err != nil {
		return false, apperrors.NewInternalError("toggle saved recipe", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"recipe_id": recipeID,
		"saved":     saved,
	}).Debug("Saved recipe toggled")
	return saved, nil
}
