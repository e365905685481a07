package handlers

import (
	"net/http"

	"procook-backend/internal/auth"
	"procook-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommentHandler handles HTTP requests for recipe comments
type CommentHandler struct {
	service service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListComments handles GET /api/recipes/:id/comments
// @Summary List a recipe's comments
// @Description Root comments newest first, each with its replies oldest first
// @Tags comments
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 200 {object} Response{data=[]service.CommentResponse}
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	recipeID, ok := pathID(c, "id", "recipe")
	if !ok {
		return
	}

	threads, err := h.service.ListForRecipe(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err, "Failed to fetch comments.")
		return
	}
	respondList(c, threads, int64(len(threads)))
}

// CreateComment handles POST /api/recipes/:id/comments
// @Summary Comment on a recipe
// @Description parent_id makes the comment a reply; only root comments accept replies
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Param comment body service.CreateCommentRequest true "Comment"
// @Success 201 {object} Response{data=service.CommentResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	recipeID, ok := pathID(c, "id", "recipe")
	if !ok {
		return
	}

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	comment, err := h.service.Create(c.Request.Context(), auth.GetPrincipalID(c), recipeID, &req)
	if err != nil {
		respondError(c, err, "Failed to add comment.")
		return
	}
	respond(c, http.StatusCreated, "Comment added successfully.", comment)
}

// UpdateComment handles PUT /api/recipes/:id/comments/:commentId
// @Summary Edit a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Param commentId path string true "Comment ID (UUID)"
// @Param comment body service.UpdateCommentRequest true "Comment"
// @Success 200 {object} Response{data=service.CommentResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id}/comments/{commentId} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	recipeID, commentID, ok := commentPath(c)
	if !ok {
		return
	}

	var req service.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	comment, err := h.service.Update(c.Request.Context(), auth.GetPrincipalID(c), recipeID, commentID, &req)
	if err != nil {
		respondError(c, err, "Failed to update comment.")
		return
	}
	respond(c, http.StatusOK, "Comment updated successfully.", comment)
}

// DeleteComment handles DELETE /api/recipes/:id/comments/:commentId
// @Summary Delete a comment
// @Description Deleting a root comment deletes its replies
// @Tags comments
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Param commentId path string true "Comment ID (UUID)"
// @Success 200 {object} Response
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id}/comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	recipeID, commentID, ok := commentPath(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), auth.GetPrincipalID(c), recipeID, commentID); err != nil {
		respondError(c, err, "Failed to delete comment.")
		return
	}
	respond(c, http.StatusOK, "Comment deleted successfully.", nil)
}

func commentPath(c *gin.Context) (recipeID, commentID uuid.UUID, ok bool) {
	if recipeID, ok = pathID(c, "id", "recipe"); !ok {
		return
	}
	commentID, ok = pathID(c, "commentId", "comment")
	return
}
