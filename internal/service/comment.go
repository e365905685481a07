package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"procook-backend/internal/database/models"
	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/logger"
	"procook-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const invalidParentMessage = "Invalid parent comment."

var commentMessages = fieldMessages{
	"comment|required": "Comment text is required.",
	"comment|max":      "Comment cannot exceed 1000 characters.",
}

// CommentService manages two-level comment threads on recipes. Replies may
// only target root comments of the same recipe.
type CommentService struct {
	store     repository.Store
	validator *validator.Validate
	ledger    OwnershipLedger
}

// NewCommentService creates a new comment service
func NewCommentService(store repository.Store, validator *validator.Validate) *CommentService {
	return &CommentService{
		store:     store,
		validator: validator,
	}
}

// CreateCommentRequest represents a new comment or reply
type CreateCommentRequest struct {
	Comment  string     `json:"comment" validate:"required,max=1000"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// UpdateCommentRequest represents an edit of a comment's text
type UpdateCommentRequest struct {
	Comment string `json:"comment" validate:"required,max=1000"`
}

// CommentResponse represents a comment with its author and, for roots, replies
type CommentResponse struct {
	ID        uuid.UUID         `json:"id"`
	RecipeID  uuid.UUID         `json:"recipe_id"`
	UserID    *uuid.UUID        `json:"user_id"`
	ParentID  *uuid.UUID        `json:"parent_id"`
	Comment   string            `json:"comment"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	User      *AuthorResponse   `json:"user"`
	Replies   []CommentResponse `json:"replies"`
}

func toCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		RecipeID:  c.RecipeID,
		UserID:    c.UserID,
		ParentID:  c.ParentID,
		Comment:   c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Replies:   make([]CommentResponse, 0, len(c.Replies)),
	}
	if c.User != nil {
		resp.User = &AuthorResponse{ID: c.User.ID, Name: c.User.Name}
	}
	for i := range c.Replies {
		resp.Replies = append(resp.Replies, toCommentResponse(&c.Replies[i]))
	}
	return resp
}

// ListForRecipe returns root comments newest first, each with replies oldest first
func (s *CommentService) ListForRecipe(ctx context.Context, recipeID uuid.UUID) ([]CommentResponse, error) {
	if _, err := loadRecipe(ctx, s.store, recipeID); err != nil {
		return nil, err
	}

	threads, err := s.store.Comments().ListThreads(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	out := make([]CommentResponse, 0, len(threads))
	for i := range threads {
		out = append(out, toCommentResponse(&threads[i]))
	}
	return out, nil
}

// Create adds a root comment, or a reply when ParentID names a root comment of the same recipe
func (s *CommentService) Create(ctx context.Context, principal, recipeID uuid.UUID, req *CreateCommentRequest) (*CommentResponse, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if _, err := loadRecipe(ctx, s.store, recipeID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.store.Comments().GetByRecipeAndID(ctx, recipeID, *req.ParentID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get parent comment: %w", err)
		}
		if parent == nil || !parent.IsRoot() {
			verrs := apperrors.NewValidationErrors(invalidParentMessage)
			verrs.Add("parent_id", invalidParentMessage)
			return nil, verrs
		}
	}

	req.Comment = strings.TrimSpace(req.Comment)
	verrs, err := collect(s.validator, req, "Validation failed.", commentMessages)
	if err != nil {
		return nil, err
	}
	if err := verrs.OrNil(); err != nil {
		return nil, err
	}

	author := principal
	comment := &models.Comment{
		RecipeID: recipeID,
		UserID:   &author,
		ParentID: req.ParentID,
		Body:     req.Comment,
	}
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.Comments().Create(ctx, comment)
	})
	if err != nil {
		return nil, apperrors.NewInternalError("create comment", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"recipe_id":  recipeID,
		"comment_id": comment.ID,
	}).Info("Comment created")
	return s.reload(ctx, recipeID, comment.ID)
}

// Update changes the text of a comment written by principal
func (s *CommentService) Update(ctx context.Context, principal, recipeID, commentID uuid.UUID, req *UpdateCommentRequest) (*CommentResponse, error) {
	if _, err := s.authored(ctx, principal, recipeID, commentID, apperrors.ErrCommentUpdateForbidden); err != nil {
		return nil, err
	}

	req.Comment = strings.TrimSpace(req.Comment)
	verrs, err := collect(s.validator, req, "Validation failed.", commentMessages)
	if err != nil {
		return nil, err
	}
	if err := verrs.OrNil(); err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.Comments().UpdateBody(ctx, commentID, req.Comment)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, apperrors.NewInternalError("update comment", err)
	}
	return s.reload(ctx, recipeID, commentID)
}

// Delete removes a comment written by principal together with its replies
func (s *CommentService) Delete(ctx context.Context, principal, recipeID, commentID uuid.UUID) error {
	if _, err := s.authored(ctx, principal, recipeID, commentID, apperrors.ErrCommentDeleteForbidden); err != nil {
		return err
	}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.Comments().Delete(ctx, commentID)
	})
	if err != nil {
		return apperrors.NewInternalError("delete comment", err)
	}

	logger.WithContext(ctx).WithField("comment_id", commentID).Info("Comment deleted")
	return nil
}

// authored loads the comment under recipeID and checks that principal wrote it
func (s *CommentService) authored(ctx context.Context, principal, recipeID, commentID uuid.UUID, denied error) (*models.Comment, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	comment, err := s.store.Comments().GetByRecipeAndID(ctx, recipeID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if !s.ledger.AuthoredComment(principal, comment) {
		return nil, denied
	}
	return comment, nil
}

func (s *CommentService) reload(ctx context.Context, recipeID, commentID uuid.UUID) (*CommentResponse, error) {
	comment, err := s.store.Comments().GetByRecipeAndID(ctx, recipeID, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload comment: %w", err)
	}
	resp := toCommentResponse(comment)
	return &resp, nil
}
