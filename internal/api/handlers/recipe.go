package handlers

import (
	"errors"
	"net/http"

	"procook-backend/internal/auth"
	"procook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecipeHandler handles HTTP requests for recipes
type RecipeHandler struct {
	service        service.RecipeServiceInterface
	maxUploadBytes int64
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(service service.RecipeServiceInterface, maxUploadBytes int64) *RecipeHandler {
	return &RecipeHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// ListRecipes handles GET /api/recipes
// @Summary List recipes
// @Description Newest recipes first, each with its owner and rating aggregates
// @Tags recipes
// @Produce json
// @Param limit query int false "Maximum number of recipes (capped at 100)"
// @Success 200 {object} Response{data=[]service.RecipeResponse}
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	limit, err := intQuery(c, "limit")
	if err != nil {
		respondError(c, err, "Failed to fetch recipes.")
		return
	}

	recipes, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "Failed to fetch recipes.")
		return
	}
	respondList(c, recipes, int64(len(recipes)))
}

// GetRecipe handles GET /api/recipes/:id
// @Summary Get recipe by ID
// @Description Recipe with owner, ordered ingredients and rendered preparation notes
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 200 {object} Response{data=service.RecipeResponse}
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := pathID(c, "id", "recipe")
	if !ok {
		return
	}

	recipe, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch recipe details.")
		return
	}
	respond(c, http.StatusOK, "", recipe)
}

// MyRecipes handles GET /api/my-recipes
// @Summary List the caller's recipes
// @Tags recipes
// @Produce json
// @Param limit query int false "Page size (capped at 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response{data=[]service.RecipeResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /my-recipes [get]
func (h *RecipeHandler) MyRecipes(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		respondError(c, err, "Failed to fetch your recipes.")
		return
	}

	recipes, total, err := h.service.ListByOwner(c.Request.Context(), auth.GetPrincipalID(c), limit, offset)
	if err != nil {
		respondError(c, err, "Failed to fetch your recipes.")
		return
	}
	respondList(c, recipes, total)
}

// CreateRecipe handles POST /api/recipes
// @Summary Create a recipe
// @Description Accepts JSON, or multipart/form-data with an optional image and ingredients as a JSON string
// @Tags recipes
// @Accept json,mpfd
// @Produce json
// @Param recipe body recipeFields true "Recipe data"
// @Success 201 {object} Response{data=service.RecipeResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	const fallback = "Failed to create recipe. Please try again."

	input, err := readRecipeInput(c, h.maxUploadBytes)
	if err != nil {
		h.respondInputError(c, err, fallback)
		return
	}

	recipe, err := h.service.Create(c.Request.Context(), auth.GetPrincipalID(c), input)
	if err != nil {
		respondError(c, err, fallback)
		return
	}
	respond(c, http.StatusCreated, "Recipe created successfully!", recipe)
}

// UpdateRecipe handles PUT /api/recipes/:id
// @Summary Replace a recipe
// @Description Replaces every field and the full ingredient list. expected_updated_at enables a stale-write check.
// @Tags recipes
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Param recipe body recipeFields true "Recipe data"
// @Success 200 {object} Response{data=service.RecipeResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	const fallback = "Failed to update recipe. Please try again."

	id, ok := pathID(c, "id", "recipe")
	if !ok {
		return
	}

	input, err := readRecipeInput(c, h.maxUploadBytes)
	if err != nil {
		h.respondInputError(c, err, fallback)
		return
	}

	recipe, err := h.service.Replace(c.Request.Context(), auth.GetPrincipalID(c), id, input)
	if err != nil {
		respondError(c, err, fallback)
		return
	}
	respond(c, http.StatusOK, "Recipe updated successfully!", recipe)
}

// DeleteRecipe handles DELETE /api/recipes/:id
// @Summary Delete a recipe
// @Description Deletes the recipe with its ingredients, comments, ratings and saved relations
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 200 {object} Response
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := pathID(c, "id", "recipe")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), auth.GetPrincipalID(c), id); err != nil {
		respondError(c, err, "Failed to delete recipe. Please try again.")
		return
	}
	respond(c, http.StatusOK, "Recipe deleted successfully.", nil)
}

func (h *RecipeHandler) respondInputError(c *gin.Context, err error, fallback string) {
	var malformed *bodyError
	switch {
	case errors.Is(err, errUploadTooLarge):
		respondFailure(c, http.StatusRequestEntityTooLarge, "The upload is too large.")
	case errors.As(err, &malformed):
		respondFailure(c, http.StatusBadRequest, "Invalid request body.")
	default:
		respondError(c, err, fallback)
	}
}
