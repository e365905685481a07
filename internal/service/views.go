package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"procook-backend/internal/database/models"
	"procook-backend/internal/logger"
	"procook-backend/internal/repository"
	"procook-backend/internal/storage"

	"github.com/google/uuid"
)

// UserResponse represents the public data of a user
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorResponse is the reduced user shown next to comments
type AuthorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// IngredientResponse represents one ingredient line of a recipe
type IngredientResponse struct {
	ID                 uuid.UUID `json:"id"`
	RecipeID           uuid.UUID `json:"recipe_id"`
	Name               string    `json:"name"`
	Measurement        string    `json:"measurement"`
	SubstitutionOption *string   `json:"substitution_option"`
	AllergenInfo       *string   `json:"allergen_info"`
	Order              int       `json:"order"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RecipeResponse represents a recipe with its owner and rating aggregate
type RecipeResponse struct {
	ID                   uuid.UUID            `json:"id"`
	UserID               *uuid.UUID           `json:"user_id"`
	Title                string               `json:"title"`
	ShortDescription     string               `json:"short_description"`
	Image                *string              `json:"image"`
	ImageURL             *string              `json:"image_url"`
	CuisineType          string               `json:"cuisine_type"`
	Category             string               `json:"category"`
	PrepTime             int                  `json:"prep_time"`
	CookTime             int                  `json:"cook_time"`
	TotalTime            int                  `json:"total_time"`
	ServingSize          int                  `json:"serving_size"`
	PreparationNotes     *string              `json:"preparation_notes"`
	PreparationNotesHTML *string              `json:"preparation_notes_html,omitempty"`
	AverageRating        float64              `json:"average_rating"`
	RatingsCount         int64                `json:"ratings_count"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
	User                 *UserResponse        `json:"user"`
	Ingredients          []IngredientResponse `json:"ingredients,omitempty"`
}

func toUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// roundAverage rounds to one decimal place
func roundAverage(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// recipePresenter builds recipe responses. Rating aggregates for a page of
// recipes are read with one query.
type recipePresenter struct {
	assets storage.AssetStore
	notes  *NotesRenderer
}

func (p recipePresenter) present(ctx context.Context, ratings repository.RatingRepositoryInterface, recipes []models.Recipe, renderNotes bool) ([]RecipeResponse, error) {
	ids := make([]uuid.UUID, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
	}

	summaries := map[uuid.UUID]models.RatingSummary{}
	if len(ids) > 0 {
		var err error
		summaries, err = ratings.Summaries(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get rating summaries: %w", err)
		}
	}

	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, p.toResponse(ctx, &recipes[i], summaries[recipes[i].ID], renderNotes))
	}
	return out, nil
}

func (p recipePresenter) presentOne(ctx context.Context, ratings repository.RatingRepositoryInterface, recipe *models.Recipe) (*RecipeResponse, error) {
	list, err := p.present(ctx, ratings, []models.Recipe{*recipe}, true)
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (p recipePresenter) toResponse(ctx context.Context, r *models.Recipe, summary models.RatingSummary, renderNotes bool) RecipeResponse {
	resp := RecipeResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Image:            r.Image,
		CuisineType:      r.CuisineType,
		Category:         r.Category,
		PrepTime:         r.PrepTime,
		CookTime:         r.CookTime,
		TotalTime:        r.TotalTime,
		ServingSize:      r.ServingSize,
		PreparationNotes: r.PreparationNotes,
		AverageRating:    roundAverage(summary.Average),
		RatingsCount:     summary.Count,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		User:             toUserResponse(r.User),
	}

	if r.Image != nil && p.assets != nil {
		u := p.assets.URL(*r.Image)
		resp.ImageURL = &u
	}

	if renderNotes && r.PreparationNotes != nil && p.notes != nil {
		html, err := p.notes.Render(*r.PreparationNotes)
		if err != nil {
			logger.WithContext(ctx).WithError(err).WithField("recipe_id", r.ID).Warn("Failed to render preparation notes")
		} else {
			resp.PreparationNotesHTML = &html
		}
	}

	for _, ing := range r.Ingredients {
		resp.Ingredients = append(resp.Ingredients, IngredientResponse{
			ID:                 ing.ID,
			RecipeID:           ing.RecipeID,
			Name:               ing.Name,
			Measurement:        ing.Measurement,
			SubstitutionOption: ing.SubstitutionOption,
			AllergenInfo:       ing.AllergenInfo,
			Order:              ing.Position,
			CreatedAt:          ing.CreatedAt,
			UpdatedAt:          ing.UpdatedAt,
		})
	}
	return resp
}
