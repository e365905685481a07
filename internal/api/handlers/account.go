package handlers

import (
	"net/http"

	"procook-backend/internal/auth"
	"procook-backend/internal/database/models"
	"procook-backend/internal/logger"
	"procook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles registration, login and profile requests
type AccountHandler struct {
	service    service.AccountServiceInterface
	tokens     *auth.TokenService
	middleware *auth.AuthMiddleware
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service service.AccountServiceInterface, tokens *auth.TokenService, middleware *auth.AuthMiddleware) *AccountHandler {
	return &AccountHandler{service: service, tokens: tokens, middleware: middleware}
}

// AuthResponse is returned by register and login. Browsers use the session
// cookie; API clients use the bearer token.
type AuthResponse struct {
	User  *service.UserResponse `json:"user"`
	Token *auth.TokenResponse   `json:"token"`
}

// Register handles POST /api/register
// @Summary Register an account
// @Tags account
// @Accept json
// @Produce json
// @Param account body service.RegisterRequest true "Account data"
// @Success 201 {object} Response{data=AuthResponse}
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	const fallback = "Registration failed. Please try again."

	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, fallback)
		return
	}

	session, err := h.signIn(c, user)
	if err != nil {
		respondError(c, err, fallback)
		return
	}
	respond(c, http.StatusCreated, "Registration successful! Welcome to ProCook.", session)
}

// Login handles POST /api/login
// @Summary Log in
// @Tags account
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} Response{data=AuthResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	const fallback = "Login failed. Please try again."

	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, fallback)
		return
	}

	session, err := h.signIn(c, user)
	if err != nil {
		respondError(c, err, fallback)
		return
	}
	respond(c, http.StatusOK, "Login successful! Welcome back.", session)
}

// Logout handles POST /api/logout
// @Summary Log out
// @Description Ends the cookie session and revokes the bearer token used for the request
// @Tags account
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /logout [post]
func (h *AccountHandler) Logout(c *gin.Context) {
	if err := h.middleware.Terminator(c).InvalidateSession(); err != nil {
		respondError(c, err, "Logout failed. Please try again.")
		return
	}
	respond(c, http.StatusOK, "Logged out successfully", nil)
}

// CurrentUser handles GET /api/user
// @Summary Get the authenticated user
// @Tags account
// @Produce json
// @Success 200 {object} Response{data=service.UserResponse}
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /user [get]
func (h *AccountHandler) CurrentUser(c *gin.Context) {
	user, err := h.service.CurrentUser(c.Request.Context(), auth.GetPrincipalID(c))
	if err != nil {
		respondError(c, err, "Failed to fetch user information.")
		return
	}
	respond(c, http.StatusOK, "", user)
}

// Profile handles GET /api/profile
// @Summary Get the authenticated user's profile
// @Description User with recipe, comment, rating and saved counts
// @Tags account
// @Produce json
// @Success 200 {object} Response{data=service.ProfileResponse}
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *AccountHandler) Profile(c *gin.Context) {
	profile, err := h.service.Profile(c.Request.Context(), auth.GetPrincipalID(c))
	if err != nil {
		respondError(c, err, "Failed to fetch profile information.")
		return
	}
	respond(c, http.StatusOK, "", profile)
}

// UpdateProfile handles PUT /api/profile
// @Summary Update name and email
// @Tags account
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Profile data"
// @Success 200 {object} Response{data=service.UserResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [put]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), auth.GetPrincipalID(c), &req)
	if err != nil {
		respondError(c, err, "Failed to update profile.")
		return
	}
	respond(c, http.StatusOK, "Profile updated successfully.", user)
}

// ChangePassword handles PUT /api/profile/password
// @Summary Change password
// @Tags account
// @Accept json
// @Produce json
// @Param password body service.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} Response
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/password [put]
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), auth.GetPrincipalID(c), &req); err != nil {
		respondError(c, err, "Failed to change password.")
		return
	}
	respond(c, http.StatusOK, "Password changed successfully.", nil)
}

// DeleteAccount handles DELETE /api/profile
// @Summary Delete the account
// @Description mode=delete_all removes the user's recipes and activity; mode=keep_data keeps content with the author detached
// @Tags account
// @Accept json
// @Produce json
// @Param request body service.DeleteAccountRequest true "Password confirmation and mode"
// @Success 200 {object} Response
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	var req service.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	principal := auth.GetPrincipalID(c)
	if err := h.service.DeleteAccount(c.Request.Context(), principal, &req, h.middleware.Terminator(c)); err != nil {
		respondError(c, err, "Failed to delete account. Please try again.")
		return
	}

	logger.WithContext(c.Request.Context()).WithField("mode", req.Mode).Info("account deleted")
	respond(c, http.StatusOK, "Account deleted successfully.", nil)
}

// signIn starts the cookie session and issues a bearer token for user
func (h *AccountHandler) signIn(c *gin.Context, user *service.UserResponse) (*AuthResponse, error) {
	if err := auth.StartSession(c, user.ID); err != nil {
		return nil, err
	}
	token, err := h.tokens.GenerateJWT(&models.User{
		BaseModel: models.BaseModel{ID: user.ID},
		Name:      user.Name,
		Email:     user.Email,
	})
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: user, Token: token}, nil
}
