package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"procook-backend/internal/database/models"
	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/logger"
	"procook-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingNumberMessage is reported when the submitted rating is not a number
const RatingNumberMessage = "Rating must be a number."

var ratingMessages = fieldMessages{
	"rating|required": "Rating must be between 1 and 5.",
	"rating|min":      "Rating must be between 1 and 5.",
	"rating|max":      "Rating must be between 1 and 5.",
}

// RatingService keeps one rating per (recipe, user) and derives the recipe's
// average and count after every change.
type RatingService struct {
	store     repository.Store
	cache     *RatingSummaryCache
	validator *validator.Validate
	ledger    OwnershipLedger
}

// NewRatingService creates a new rating service
func NewRatingService(store repository.Store, cache *RatingSummaryCache, validator *validator.Validate) *RatingService {
	return &RatingService{
		store:     store,
		cache:     cache,
		validator: validator,
	}
}

// RatingRequest represents a submitted rating value
type RatingRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
	// DecodeError is set by the transport when the value was not a number
	DecodeError string `json:"-"`
}

// RatingResponse represents a stored rating
type RatingResponse struct {
	ID        uuid.UUID  `json:"id"`
	RecipeID  uuid.UUID  `json:"recipe_id"`
	UserID    *uuid.UUID `json:"user_id"`
	Rating    int16      `json:"rating"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RatingSummaryResponse is the aggregate of a recipe's ratings
type RatingSummaryResponse struct {
	AverageRating float64 `json:"averageRating"`
	RatingsCount  int64   `json:"ratingsCount"`
}

// RatingSubmitResponse is returned after an upsert
type RatingSubmitResponse struct {
	Rating        RatingResponse `json:"rating"`
	AverageRating float64        `json:"averageRating"`
	RatingsCount  int64          `json:"ratingsCount"`
}

// UserRatingResponse is the principal's own rating next to the aggregate
type UserRatingResponse struct {
	UserRating    *int16  `json:"userRating"`
	AverageRating float64 `json:"averageRating"`
	RatingsCount  int64   `json:"ratingsCount"`
}

// PublicRatingResponse is the reduced view; it never exposes per-user ratings
type PublicRatingResponse struct {
	AverageRating float64    `json:"averageRating"`
	RatingsCount  int64      `json:"ratingsCount"`
	RecipeOwnerID *uuid.UUID `json:"recipeOwnerId"`
}

func toSummaryResponse(s *models.RatingSummary) RatingSummaryResponse {
	return RatingSummaryResponse{AverageRating: roundAverage(s.Average), RatingsCount: s.Count}
}

// Upsert stores principal's rating, overwriting an earlier one. The unique
// (recipe, user) index decides between insert and update.
func (s *RatingService) Upsert(ctx context.Context, principal, recipeID uuid.UUID, req *RatingRequest) (*RatingSubmitResponse, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	recipe, err := loadRecipe(ctx, s.store, recipeID)
	if err != nil {
		return nil, err
	}
	if s.ledger.OwnsRecipe(principal, recipe) {
		return nil, apperrors.ErrSelfRatingForbidden
	}

	verrs := apperrors.NewValidationErrors("Validation failed.")
	if req.DecodeError != "" {
		verrs.Add("rating", req.DecodeError)
	}
	if err := collectInto(verrs, s.validator, req, ratingMessages); err != nil {
		return nil, err
	}
	if err := verrs.OrNil(); err != nil {
		return nil, err
	}

	var stored *models.Rating
	var summary *models.RatingSummary
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		user := principal
		if err := tx.Ratings().Upsert(ctx, &models.Rating{RecipeID: recipeID, UserID: &user, Value: int16(req.Rating)}); err != nil {
			return err
		}
		var err error
		if stored, err = tx.Ratings().GetByRecipeAndUser(ctx, recipeID, principal); err != nil {
			return err
		}
		summary, err = tx.Ratings().Summary(ctx, recipeID)
		return err
	})
	s.cache.Invalidate(recipeID)
	if err != nil {
		return nil, apperrors.NewInternalError("save rating", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"recipe_id": recipeID,
		"rating":    req.Rating,
	}).Info("Rating saved")

	agg := toSummaryResponse(summary)
	return &RatingSubmitResponse{
		Rating: RatingResponse{
			ID:        stored.ID,
			RecipeID:  stored.RecipeID,
			UserID:    stored.UserID,
			Rating:    stored.Value,
			CreatedAt: stored.CreatedAt,
			UpdatedAt: stored.UpdatedAt,
		},
		AverageRating: agg.AverageRating,
		RatingsCount:  agg.RatingsCount,
	}, nil
}

// Get returns principal's rating of a recipe, if any, with the aggregate
func (s *RatingService) Get(ctx context.Context, principal, recipeID uuid.UUID) (*UserRatingResponse, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if _, err := loadRecipe(ctx, s.store, recipeID); err != nil {
		return nil, err
	}

	resp := &UserRatingResponse{}
	rating, err := s.store.Ratings().GetByRecipeAndUser(ctx, recipeID, principal)
	switch {
	case err == nil:
		resp.UserRating = &rating.Value
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	summary, err := s.summary(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	agg := toSummaryResponse(summary)
	resp.AverageRating = agg.AverageRating
	resp.RatingsCount = agg.RatingsCount
	return resp, nil
}

// GetPublic returns the aggregate and the recipe owner's id
func (s *RatingService) GetPublic(ctx context.Context, recipeID uuid.UUID) (*PublicRatingResponse, error) {
	recipe, err := loadRecipe(ctx, s.store, recipeID)
	if err != nil {
		return nil, err
	}
	summary, err := s.summary(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	agg := toSummaryResponse(summary)
	return &PublicRatingResponse{
		AverageRating: agg.AverageRating,
		RatingsCount:  agg.RatingsCount,
		RecipeOwnerID: recipe.UserID,
	}, nil
}

// Delete removes principal's own rating and returns the new aggregate
func (s *RatingService) Delete(ctx context.Context, principal, recipeID uuid.UUID) (*RatingSummaryResponse, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if _, err := loadRecipe(ctx, s.store, recipeID); err != nil {
		return nil, err
	}

	var summary *models.RatingSummary
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		removed, err := tx.Ratings().DeleteByRecipeAndUser(ctx, recipeID, principal)
		if err != nil {
			return err
		}
		if removed == 0 {
			return apperrors.ErrRatingNotFound
		}
		summary, err = tx.Ratings().Summary(ctx, recipeID)
		return err
	})
	s.cache.Invalidate(recipeID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, apperrors.NewInternalError("delete rating", err)
	}

	logger.WithContext(ctx).WithField("recipe_id", recipeID).Info("Rating removed")
	resp := toSummaryResponse(summary)
	return &resp, nil
}

// summary reads the aggregate through the cache. Writers only invalidate;
// the cache is filled here, and only when no write landed during the read.
func (s *RatingService) summary(ctx context.Context, recipeID uuid.UUID) (*models.RatingSummary, error) {
	cached, ticket, ok := s.cache.Lookup(recipeID)
	if ok {
		return &cached, nil
	}
	summary, err := s.store.Ratings().Summary(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating summary: %w", err)
	}
	s.cache.Store(ticket, *summary)
	return summary, nil
}
