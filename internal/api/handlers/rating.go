package handlers

import (
	"encoding/json"
	"net/http"

	"procook-backend/internal/auth"
	"procook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RatingHandler handles HTTP requests for recipe ratings
type RatingHandler struct {
	service service.RatingServiceInterface
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(service service.RatingServiceInterface) *RatingHandler {
	return &RatingHandler{service: service}
}

type ratingBody struct {
	Rating json.RawMessage `json:"rating" swaggertype:"integer" example:"4"`
}

// SubmitRating handles POST /api/recipes/:id/rating
// @Summary Rate a recipe
// @Description Creates or replaces the caller's rating. Owners cannot rate their own recipes.
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Param rating body ratingBody true "Rating between 1 and 5"
// @Success 200 {object} Response{data=service.RatingSubmitResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id}/rating [post]
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	recipeID, ok := pathID(c, "id", "recipe")
	if !ok {
		return
	}

	var body ratingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	req := &service.RatingRequest{}
	if value, ok := parseNumber(body.Rating); ok {
		req.Rating = value
	} else {
		req.DecodeError = service.RatingNumberMessage
	}

	result, err := h.service.Upsert(c.Request.Context(), auth.GetPrincipalID(c), recipeID, req)
	if err != nil {
		respondError(c, err, "Failed to submit rating.")
		return
	}
	respond(c, http.StatusOK, "Rating submitted successfully.", result)
}

// GetRating handles GET /api/recipes/:id/rating
// @Summary Get the caller's rating and the aggregate
// @Tags ratings
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 200 {object} Response{data=service.UserRatingResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id}/rating [get]
func (h *RatingHandler) GetRating(c *gin.Context) {
	recipeID, ok := pathID(c, "id", "recipe")
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), auth.GetPrincipalID(c), recipeID)
	if err != nil {
		respondError(c, err, "Failed to fetch rating.")
		return
	}
	respond(c, http.StatusOK, "", result)
}

// GetPublicRating handles GET /api/recipes/:id/rating/public
// @Summary Get a recipe's rating aggregate
// @Tags ratings
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 200 {object} Response{data=service.PublicRatingResponse}
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{id}/rating/public [get]
func (h *RatingHandler) GetPublicRating(c *gin.Context) {
	recipeID, ok := pathID(c, "id", "recipe")
	if !ok {
		return
	}

	result, err := h.service.GetPublic(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err, "Failed to fetch rating.")
		return
	}
	respond(c, http.StatusOK, "", result)
}

// DeleteRating handles DELETE /api/recipes/:id/rating
// @Summary Remove the caller's rating
// @Tags ratings
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 200 {object} Response{data=service.RatingSummaryResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id}/rating [delete]
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	recipeID, ok := pathID(c, "id", "recipe")
	if !ok {
		return
	}

	result, err := h.service.Delete(c.Request.Context(), auth.GetPrincipalID(c), recipeID)
	if err != nil {
		respondError(c, err, "Failed to remove rating.")
		return
	}
	respond(c, http.StatusOK, "Rating removed successfully.", result)
}
