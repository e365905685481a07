package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"procook-backend/internal/database/models"
	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/logger"
	"procook-backend/internal/repository"
	"procook-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// MaxRecipeListLimit caps every recipe listing
	MaxRecipeListLimit = 100

	recipeValidationMessage = "Recipe validation failed"
)

// RecipeNumberMessages are reported when a numeric recipe field is not a number
var RecipeNumberMessages = map[string]string{
	"prep_time":    "Preparation time must be a number.",
	"cook_time":    "Cooking time must be a number.",
	"serving_size": "Serving size must be a number.",
}

var recipeMessages = fieldMessages{
	"title|required":             "Recipe title must be at least 3 characters.",
	"title|min":                  "Recipe title must be at least 3 characters.",
	"title|max":                  "Recipe title cannot exceed 255 characters.",
	"short_description|required": "Description must be at least 10 characters.",
	"short_description|min":      "Description must be at least 10 characters.",
	"short_description|max":      "Description cannot exceed 500 characters.",
	"cuisine_type|required":      "Please select a cuisine type.",
	"cuisine_type|max":           "Cuisine type cannot exceed 100 characters.",
	"category|required":          "Please select a category.",
	"category|max":               "Category cannot exceed 100 characters.",
	"prep_time|min":              "Preparation time must be between 1 and 1440 minutes.",
	"prep_time|max":              "Preparation time must be between 1 and 1440 minutes.",
	"cook_time|min":              "Cooking time must be between 0 and 1440 minutes.",
	"cook_time|max":              "Cooking time must be between 0 and 1440 minutes.",
	"serving_size|min":           "Serving size must be between 1 and 100.",
	"serving_size|max":           "Serving size must be between 1 and 100.",
	"preparation_notes|min":      "Instructions must be at least 20 characters.",
	"ingredients|required":       "At least one ingredient is required.",
	"ingredients|min":            "At least one ingredient is required.",
	"ingredients|max":            "Cannot add more than 50 ingredients.",

	"ingredients.*.name|required":          "Ingredient name is required.",
	"ingredients.*.name|max":               "Ingredient name cannot exceed 255 characters.",
	"ingredients.*.measurement|required":   "Ingredient measurement is required.",
	"ingredients.*.measurement|max":        "Ingredient measurement cannot exceed 100 characters.",
	"ingredients.*.substitution_option|max": "Substitution option cannot exceed 255 characters.",
	"ingredients.*.allergen_info|max":       "Allergen information cannot exceed 255 characters.",
}

// RecipeService implements the recipe aggregate: a recipe and its ordered
// ingredients are written and removed as one unit.
type RecipeService struct {
	store     repository.Store
	assets    storage.AssetStore
	cache     *RatingSummaryCache
	validator *validator.Validate
	ledger    OwnershipLedger
	presenter recipePresenter
}

// NewRecipeService creates a new recipe service
func NewRecipeService(store repository.Store, assets storage.AssetStore, notes *NotesRenderer, cache *RatingSummaryCache, validator *validator.Validate) *RecipeService {
	return &RecipeService{
		store:     store,
		assets:    assets,
		cache:     cache,
		validator: validator,
		presenter: recipePresenter{assets: assets, notes: notes},
	}
}

// IngredientInput is one ingredient line of a recipe write
type IngredientInput struct {
	Name               string  `json:"name" validate:"required,max=255"`
	Measurement        string  `json:"measurement" validate:"required,max=100"`
	SubstitutionOption *string `json:"substitution_option" validate:"omitempty,max=255"`
	AllergenInfo       *string `json:"allergen_info" validate:"omitempty,max=255"`
}

// ImageUpload is an uploaded recipe image
type ImageUpload struct {
	Filename string
	Data     []byte
}

// RecipeInput carries the fields of a recipe create or replace. Total time is
// always derived and never accepted.
type RecipeInput struct {
	Title             string            `json:"title" validate:"required,min=3,max=255"`
	ShortDescription  string            `json:"short_description" validate:"required,min=10,max=500"`
	CuisineType       string            `json:"cuisine_type" validate:"required,max=100"`
	Category          string            `json:"category" validate:"required,max=100"`
	PrepTime          int               `json:"prep_time" validate:"min=1,max=1440"`
	CookTime          int               `json:"cook_time" validate:"min=0,max=1440"`
	ServingSize       int               `json:"serving_size" validate:"min=1,max=100"`
	PreparationNotes  *string           `json:"preparation_notes" validate:"omitempty,min=20"`
	Ingredients       []IngredientInput `json:"ingredients" validate:"required,min=1,max=50,dive"`
	ExpectedUpdatedAt *time.Time        `json:"expected_updated_at,omitempty"`

	Image *ImageUpload `json:"-"`
	// DecodeErrors holds messages for fields the transport could not decode,
	// keyed like validation fields. They win over validator messages.
	DecodeErrors map[string]string `json:"-"`
}

func (in *RecipeInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)
	in.CuisineType = strings.TrimSpace(in.CuisineType)
	in.Category = strings.TrimSpace(in.Category)
	in.PreparationNotes = trimOptional(in.PreparationNotes)
	for i := range in.Ingredients {
		ing := &in.Ingredients[i]
		ing.Name = strings.TrimSpace(ing.Name)
		ing.Measurement = strings.TrimSpace(ing.Measurement)
		ing.SubstitutionOption = trimOptional(ing.SubstitutionOption)
		ing.AllergenInfo = trimOptional(ing.AllergenInfo)
	}
}

// validate checks every field before any write and returns the image extension
func (s *RecipeService) validate(in *RecipeInput) (string, error) {
	in.normalize()

	verrs := apperrors.NewValidationErrors(recipeValidationMessage)
	for field, msg := range in.DecodeErrors {
		verrs.Add(field, msg)
	}
	if err := collectInto(verrs, s.validator, in, recipeMessages); err != nil {
		return "", err
	}

	var ext string
	if in.Image != nil {
		var ok bool
		ext, ok = storage.NormalizeExtension(filepath.Ext(in.Image.Filename))
		if !ok || !storage.IsImage(in.Image.Data) {
			verrs.Add("image", fmt.Sprintf("Image must be a file of type: %s.", strings.Join(storage.AllowedImageExtensions, ", ")))
		}
	}
	return ext, verrs.OrNil()
}

func (in *RecipeInput) ingredients() []models.Ingredient {
	out := make([]models.Ingredient, len(in.Ingredients))
	for i, ing := range in.Ingredients {
		out[i] = models.Ingredient{
			Name:               ing.Name,
			Measurement:        ing.Measurement,
			SubstitutionOption: ing.SubstitutionOption,
			AllergenInfo:       ing.AllergenInfo,
			Position:           i + 1,
		}
	}
	return out
}

func (in *RecipeInput) apply(recipe *models.Recipe) {
	recipe.Title = in.Title
	recipe.ShortDescription = in.ShortDescription
	recipe.CuisineType = in.CuisineType
	recipe.Category = in.Category
	recipe.PrepTime = in.PrepTime
	recipe.CookTime = in.CookTime
	recipe.TotalTime = in.PrepTime + in.CookTime
	recipe.ServingSize = in.ServingSize
	recipe.PreparationNotes = in.PreparationNotes
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxRecipeListLimit {
		return MaxRecipeListLimit
	}
	return limit
}

// List returns the newest recipes with owners and rating aggregates
func (s *RecipeService) List(ctx context.Context, limit int) ([]RecipeResponse, error) {
	recipes, _, err := s.store.Recipes().List(ctx, clampLimit(limit), 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return s.presenter.present(ctx, s.store.Ratings(), recipes, false)
}

// Get returns one recipe with owner, ordered ingredients and rendered notes
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*RecipeResponse, error) {
	recipe, err := s.store.Recipes().GetWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return s.presenter.presentOne(ctx, s.store.Ratings(), recipe)
}

// ListByOwner returns the principal's own recipes with their ingredients
func (s *RecipeService) ListByOwner(ctx context.Context, principal uuid.UUID, limit, offset int) ([]RecipeResponse, int64, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, 0, err
	}
	if offset < 0 {
		offset = 0
	}

	recipes, total, err := s.store.Recipes().GetByOwner(ctx, principal, clampLimit(limit), offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes by owner: %w", err)
	}
	out, err := s.presenter.present(ctx, s.store.Ratings(), recipes, false)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Create validates and stores a new recipe owned by principal
func (s *RecipeService) Create(ctx context.Context, principal uuid.UUID, input *RecipeInput) (*RecipeResponse, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	ext, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	owner := principal
	recipe := &models.Recipe{UserID: &owner, Ingredients: input.ingredients()}
	input.apply(recipe)

	var imagePath string
	if input.Image != nil {
		imagePath, err = s.assets.Save(ctx, input.Image.Data, ext)
		if err != nil {
			return nil, fmt.Errorf("failed to store recipe image: %w", err)
		}
		recipe.Image = &imagePath
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.Recipes().Create(ctx, recipe)
	})
	if err != nil {
		s.discardAsset(ctx, imagePath)
		return nil, apperrors.NewInternalError("create recipe", err)
	}

	logger.WithContext(ctx).WithField("recipe_id", recipe.ID).Info("Recipe created")
	return s.Get(ctx, recipe.ID)
}

// Replace overwrites a recipe and swaps its ingredient list wholesale. The
// previous image is only removed after the new state is committed.
func (s *RecipeService) Replace(ctx context.Context, principal, id uuid.UUID, input *RecipeInput) (*RecipeResponse, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	existing, err := loadRecipe(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	if !s.ledger.OwnsRecipe(principal, existing) {
		return nil, apperrors.ErrRecipeEditForbidden
	}
	ext, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	updated := *existing
	input.apply(&updated)

	var newImage string
	if input.Image != nil {
		newImage, err = s.assets.Save(ctx, input.Image.Data, ext)
		if err != nil {
			return nil, fmt.Errorf("failed to store recipe image: %w", err)
		}
		updated.Image = &newImage
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.Recipes().Update(ctx, &updated, input.ExpectedUpdatedAt); err != nil {
			return err
		}
		return tx.Recipes().ReplaceIngredients(ctx, id, input.ingredients())
	})
	if err != nil {
		s.discardAsset(ctx, newImage)
		switch {
		case apperrors.IsConflict(err):
			return nil, err
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, apperrors.NewInternalError("replace recipe", err)
	}

	if newImage != "" && existing.Image != nil {
		s.discardAsset(ctx, *existing.Image)
	}

	logger.WithContext(ctx).WithField("recipe_id", id).Info("Recipe replaced")
	return s.Get(ctx, id)
}

// Delete removes a recipe with its ingredients, comments, ratings and saved relations
func (s *RecipeService) Delete(ctx context.Context, principal, id uuid.UUID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}
	recipe, err := loadRecipe(ctx, s.store, id)
	if err != nil {
		return err
	}
	if !s.ledger.OwnsRecipe(principal, recipe) {
		return apperrors.ErrRecipeDeleteForbidden
	}

	ids := []uuid.UUID{id}
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.Comments().DeleteByRecipes(ctx, ids); err != nil {
			return err
		}
		if err := tx.Ratings().DeleteByRecipes(ctx, ids); err != nil {
			return err
		}
		if err := tx.SavedRecipes().DeleteByRecipes(ctx, ids); err != nil {
			return err
		}
		return tx.Recipes().Delete(ctx, id)
	})
	if err != nil {
		return apperrors.NewInternalError("delete recipe", err)
	}

	s.cache.Invalidate(id)
	if recipe.Image != nil {
		s.discardAsset(ctx, *recipe.Image)
	}

	logger.WithContext(ctx).WithField("recipe_id", id).Info("Recipe deleted")
	return nil
}

// discardAsset removes a stored file; failures only leave an orphan behind
func (s *RecipeService) discardAsset(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.assets.Delete(ctx, path); err != nil && !apperrors.IsNotFound(err) {
		logger.WithContext(ctx).WithError(err).WithField("path", path).Warn("Failed to remove recipe image")
	}
}
