package handlers

import (
	"net/http"

	"procook-backend/internal/auth"
	"procook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SavedRecipeHandler handles HTTP requests for the caller's saved recipes
type SavedRecipeHandler struct {
	service service.SavedRecipeServiceInterface
}

// NewSavedRecipeHandler creates a new saved recipe handler
func NewSavedRecipeHandler(service service.SavedRecipeServiceInterface) *SavedRecipeHandler {
	return &SavedRecipeHandler{service: service}
}

// SavedStatus reports whether a recipe is in the caller's saved set
type SavedStatus struct {
	IsSaved bool `json:"isSaved"`
}

// ListSaved handles GET /api/saved-recipes
// @Summary List saved recipes
// @Description Most recently saved first
// @Tags saved-recipes
// @Produce json
// @Param limit query int false "Page size (capped at 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response{data=[]service.RecipeResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /saved-recipes [get]
func (h *SavedRecipeHandler) ListSaved(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		respondError(c, err, "Failed to fetch saved recipes.")
		return
	}

	recipes, total, err := h.service.List(c.Request.Context(), auth.GetPrincipalID(c), limit, offset)
	if err != nil {
		respondError(c, err, "Failed to fetch saved recipes.")
		return
	}
	respondList(c, recipes, total)
}

// IsSaved handles GET /api/recipes/:id/saved
// @Summary Check whether a recipe is saved
// @Tags saved-recipes
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 200 {object} Response{data=SavedStatus}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id}/saved [get]
func (h *SavedRecipeHandler) IsSaved(c *gin.Context) {
	recipeID, ok := pathID(c, "id", "recipe")
	if !ok {
		return
	}

	saved, err := h.service.IsSaved(c.Request.Context(), auth.GetPrincipalID(c), recipeID)
	if err != nil {
		respondError(c, err, "Failed to check saved status.")
		return
	}
	respond(c, http.StatusOK, "", SavedStatus{IsSaved: saved})
}

// ToggleSaved handles POST /api/recipes/:id/save
// @Summary Save or unsave a recipe
// @Description Answers 201 when the recipe was saved and 200 when it was unsaved
// @Tags saved-recipes
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 200 {object} Response{data=SavedStatus}
// @Success 201 {object} Response{data=SavedStatus}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id}/save [post]
func (h *SavedRecipeHandler) ToggleSaved(c *gin.Context) {
	recipeID, ok := pathID(c, "id", "recipe")
	if !ok {
		return
	}

	saved, err := h.service.Toggle(c.Request.Context(), auth.GetPrincipalID(c), recipeID)
	if err != nil {
		respondError(c, err, "Failed to toggle saved status.")
		return
	}
	if saved {
		respond(c, http.StatusCreated, "Recipe saved successfully.", SavedStatus{IsSaved: true})
		return
	}
	respond(c, http.StatusOK, "Recipe unsaved successfully.", SavedStatus{IsSaved: false})
}
