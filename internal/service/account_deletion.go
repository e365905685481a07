package service

import (
	"context"
	"fmt"

	"procook-backend/internal/auth"
	"procook-backend/internal/database/models"
	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/logger"
	"procook-backend/internal/repository"

	"github.com/google/uuid"
)

var deleteAccountMessages = fieldMessages{
	"password|required": "Password is required.",
	"mode|required":     "Invalid mode. Must be delete_all or keep_data.",
	"mode|oneof":        "Invalid mode. Must be delete_all or keep_data.",
}

// DeleteAccountRequest confirms an account deletion
type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
	Mode     string `json:"mode" validate:"required,oneof=delete_all keep_data"`
}

// DeleteAccount removes the principal's account. Password and mode problems are
// reported together before anything is written. Everything after that runs in
// one transaction, and the caller's session is ended once it has committed.
//
// delete_all purges the principal's recipes and all of the principal's activity.
// keep_data detaches the principal's content and drops only saved relations.
func (s *AccountService) DeleteAccount(ctx context.Context, principal uuid.UUID, req *DeleteAccountRequest, session SessionTerminator) error {
	user, err := s.loadUser(ctx, principal)
	if err != nil {
		return err
	}

	verrs, err := collect(s.validator, req, "Validation failed.", deleteAccountMessages)
	if err != nil {
		return err
	}
	if !verrs.Has("password") && !auth.CheckPassword(user.PasswordHash, req.Password) {
		verrs.Add("password", "The password is incorrect.")
	}
	if err := verrs.OrNil(); err != nil {
		return err
	}
	mode := models.DeletionMode(req.Mode)

	var images []string
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		switch mode {
		case models.DeletionModeDeleteAll:
			var err error
			if images, err = purgeContent(ctx, tx, principal); err != nil {
				return err
			}
		case models.DeletionModeKeepData:
			if err := s.ledger.Detach(ctx, tx, principal); err != nil {
				return err
			}
			if err := tx.SavedRecipes().DeleteByUser(ctx, principal); err != nil {
				return fmt.Errorf("failed to delete saved recipes: %w", err)
			}
		}

		removed, err := tx.Users().Delete(ctx, principal)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if removed == 0 {
			return apperrors.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return apperrors.NewInternalError("delete account", err)
	}

	// a session that outlives this is inert, authentication rejects missing users
	if session != nil {
		if err := session.InvalidateSession(); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("user_id", principal).Warn("Failed to invalidate session after account deletion")
		}
	}

	s.cache.Purge()
	for _, img := range images {
		if err := s.assets.Delete(ctx, img); err != nil && !apperrors.IsNotFound(err) {
			logger.WithContext(ctx).WithError(err).WithField("path", img).Warn("Failed to remove recipe image")
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id": principal,
		"mode":    mode,
	}).Info("Account deleted")
	return nil
}

// purgeContent deletes the user's recipes with their comments, ratings and
// saved relations, then the user's activity on other recipes. It returns the
// image paths of the removed recipes.
func purgeContent(ctx context.Context, tx repository.Store, userID uuid.UUID) ([]string, error) {
	ids, err := tx.Recipes().GetIDsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned recipes: %w", err)
	}
	images, err := tx.Recipes().GetImagesByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe images: %w", err)
	}

	if len(ids) > 0 {
		if err := tx.Comments().DeleteByRecipes(ctx, ids); err != nil {
			return nil, fmt.Errorf("failed to delete recipe comments: %w", err)
		}
		if err := tx.Ratings().DeleteByRecipes(ctx, ids); err != nil {
			return nil, fmt.Errorf("failed to delete recipe ratings: %w", err)
		}
		if err := tx.SavedRecipes().DeleteByRecipes(ctx, ids); err != nil {
			return nil, fmt.Errorf("failed to delete recipe saves: %w", err)
		}
		if err := tx.Recipes().Delete(ctx, ids...); err != nil {
			return nil, fmt.Errorf("failed to delete recipes: %w", err)
		}
	}

	if err := tx.Comments().DeleteByAuthor(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete comments: %w", err)
	}
	if err := tx.Ratings().DeleteByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete ratings: %w", err)
	}
	if err := tx.SavedRecipes().DeleteByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete saved recipes: %w", err)
	}
	return images, nil
}
