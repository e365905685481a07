package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"procook-backend/internal/auth"
	"procook-backend/internal/database/models"
	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/logger"
	"procook-backend/internal/repository"
	"procook-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const strongPasswordMessage = "Password must be at least 8 characters with one uppercase letter, one lowercase letter, and one number."

var registerMessages = fieldMessages{
	"name|required":            "Name must be at least 2 characters.",
	"name|min":                 "Name must be at least 2 characters.",
	"name|max":                 "Name cannot exceed 255 characters.",
	"name|person_name":         "Name can only contain letters and spaces.",
	"email|required":           "Email address is required.",
	"email|email_address":      "Please provide a valid email address.",
	"password|required":        "Password is required.",
	"password|min":             strongPasswordMessage,
	"password|strong_password": strongPasswordMessage,
	"password|eqfield":         "Password confirmation does not match.",
}

var loginMessages = fieldMessages{
	"email|required":      "Please provide your email address.",
	"email|email_address": "Please provide a valid email address.",
	"password|required":   "Please provide your password.",
}

var profileMessages = fieldMessages{
	"name|required":       "Name is required and must be under 255 characters.",
	"name|max":            "Name is required and must be under 255 characters.",
	"email|required":      "A valid email is required.",
	"email|email_address": "A valid email is required.",
}

var passwordMessages = fieldMessages{
	"current_password|required": "Current password is required.",
	"password|required":         "New password must be at least 8 characters.",
	"password|min":              "New password must be at least 8 characters.",
	"password|eqfield":          "Password confirmation does not match.",
}

// AccountService handles registration, credentials and profile data
type AccountService struct {
	store     repository.Store
	assets    storage.AssetStore
	cache     *RatingSummaryCache
	validator *validator.Validate
	ledger    OwnershipLedger
}

// NewAccountService creates a new account service
func NewAccountService(store repository.Store, assets storage.AssetStore, cache *RatingSummaryCache, validator *validator.Validate) *AccountService {
	return &AccountService{
		store:     store,
		assets:    assets,
		cache:     cache,
		validator: validator,
	}
}

// RegisterRequest represents a new account
type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,min=2,max=255,person_name"`
	Email                string `json:"email" validate:"required,email_address"`
	Password             string `json:"password" validate:"required,min=8,strong_password,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest represents submitted credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email_address"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents a profile edit
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email_address"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	CurrentPassword      string `json:"current_password" validate:"required"`
	Password             string `json:"password" validate:"required,min=8,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// ProfileResponse is the user with contribution counts
type ProfileResponse struct {
	User  UserResponse     `json:"user"`
	Stats models.UserStats `json:"stats"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with a hashed password
func (s *AccountService) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)

	verrs, err := collect(s.validator, req, "Validation failed", registerMessages)
	if err != nil {
		return nil, err
	}
	if !verrs.Has("email") {
		taken, err := s.emailTaken(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			verrs.Add("email", "This email is already registered. Please login instead.")
		}
	}
	if err := verrs.OrNil(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{Name: req.Name, Email: req.Email, PasswordHash: hash}
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			dup := apperrors.NewValidationErrors("Validation failed")
			dup.Add("email", "This email is already registered. Please login instead.")
			return nil, dup
		}
		return nil, apperrors.NewInternalError("create user", err)
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("User registered")
	return toUserResponse(user), nil
}

// Login checks credentials and returns the matching user
func (s *AccountService) Login(ctx context.Context, req *LoginRequest) (*UserResponse, error) {
	req.Email = normalizeEmail(req.Email)

	verrs, err := collect(s.validator, req, "Login validation failed", loginMessages)
	if err != nil {
		return nil, err
	}
	if err := verrs.OrNil(); err != nil {
		return nil, err
	}

	user, err := s.store.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return toUserResponse(user), nil
}

// CurrentUser returns the principal's account
func (s *AccountService) CurrentUser(ctx context.Context, principal uuid.UUID) (*UserResponse, error) {
	user, err := s.loadUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Profile returns the principal's account with contribution counts
func (s *AccountService) Profile(ctx context.Context, principal uuid.UUID) (*ProfileResponse, error) {
	user, err := s.loadUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	stats, err := s.store.Users().GetStats(ctx, principal)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return &ProfileResponse{User: *toUserResponse(user), Stats: *stats}, nil
}

// UpdateProfile changes name and email; a new email must be unused
func (s *AccountService) UpdateProfile(ctx context.Context, principal uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.loadUser(ctx, principal)
	if err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	verrs, err := collect(s.validator, req, "Validation failed.", profileMessages)
	if err != nil {
		return nil, err
	}
	if !verrs.Has("email") && req.Email != user.Email {
		taken, err := s.emailTaken(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			verrs.Add("email", "This email is already in use.")
		}
	}
	if err := verrs.OrNil(); err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.Users().Update(ctx, user)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			dup := apperrors.NewValidationErrors("Validation failed.")
			dup.Add("email", "This email is already in use.")
			return nil, dup
		}
		return nil, apperrors.NewInternalError("update user", err)
	}
	return toUserResponse(user), nil
}

// ChangePassword replaces the password after verifying the current one
func (s *AccountService) ChangePassword(ctx context.Context, principal uuid.UUID, req *ChangePasswordRequest) error {
	user, err := s.loadUser(ctx, principal)
	if err != nil {
		return err
	}

	verrs, err := collect(s.validator, req, "Validation failed.", passwordMessages)
	if err != nil {
		return err
	}
	if !verrs.Has("current_password") && !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		verrs.Add("current_password", "The current password is incorrect.")
	}
	if verrs.Has("current_password") {
		verrs.Message = "Current password is incorrect."
	}
	if err := verrs.OrNil(); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.Users().Update(ctx, user)
	})
	if err != nil {
		return apperrors.NewInternalError("update password", err)
	}

	logger.WithContext(ctx).WithField("user_id", principal).Info("Password changed")
	return nil
}

func (s *AccountService) loadUser(ctx context.Context, principal uuid.UUID) (*models.User, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	user, err := s.store.Users().GetByID(ctx, principal)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *AccountService) emailTaken(ctx context.Context, email string) (bool, error) {
	_, err := s.store.Users().GetByEmail(ctx, email)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	}
	return false, fmt.Errorf("failed to check email: %w", err)
}
