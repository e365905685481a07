package auth

import (
	"context"
	"net/http"
	"strings"

	"procook-backend/internal/database/models"
	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	principalKey = "principal_id"
	userKey      = "user"
	claimsKey    = "auth_claims"
)

// UserLookup is the user access the middleware needs
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AuthMiddleware resolves the principal from the session cookie or a bearer token
type AuthMiddleware struct {
	tokens *TokenService
	users  UserLookup
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *TokenService, users UserLookup) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// RequireAuth rejects requests without a live principal
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": apperrors.ErrUnauthenticated.Error(),
			})
			return
		}
		c.Next()
	}
}

// OptionalAuth sets the principal when one is present but never rejects
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.authenticate(c)
		c.Next()
	}
}

// authenticate prefers the session; a bearer token is the fallback
func (m *AuthMiddleware) authenticate(c *gin.Context) bool {
	var claims *AuthClaims
	principal, ok := uuid.Nil, false

	if _, hasSession := c.Get(sessions.DefaultKey); hasSession {
		principal, ok = sessionPrincipal(c)
	}

	if !ok {
		tokenString, found := bearerToken(c)
		if !found {
			return false
		}
		parsed, err := m.tokens.ValidateJWT(tokenString)
		if err != nil {
			return false
		}
		id, err := parsed.PrincipalID()
		if err != nil {
			return false
		}
		principal, claims = id, parsed
	}

	// a deleted account leaves a dangling session or token behind
	user, err := m.users.GetByID(c.Request.Context(), principal)
	if err != nil || user == nil {
		return false
	}

	c.Set(principalKey, principal)
	c.Set(userKey, user)
	if claims != nil {
		c.Set(claimsKey, claims)
	}
	c.Request = c.Request.WithContext(logger.ContextWithPrincipal(c.Request.Context(), principal.String()))
	return true
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}
	return token, true
}

// Terminator returns the session terminator bound to this request
func (m *AuthMiddleware) Terminator(c *gin.Context) *RequestSession {
	return &RequestSession{c: c, tokens: m.tokens}
}

// RequestSession ends whatever authenticated the current request
type RequestSession struct {
	c      *gin.Context
	tokens *TokenService
}

// InvalidateSession clears the cookie session and revokes the bearer token
func (s *RequestSession) InvalidateSession() error {
	if claims, ok := GetAuthClaims(s.c); ok {
		s.tokens.Revoke(claims)
	}
	if _, hasSession := s.c.Get(sessions.DefaultKey); hasSession {
		return EndSession(s.c)
	}
	return nil
}

// GetPrincipalID extracts the authenticated user id, uuid.Nil when anonymous
func GetPrincipalID(c *gin.Context) uuid.UUID {
	id, ok := c.Get(principalKey)
	if !ok {
		return uuid.Nil
	}
	principal, _ := id.(uuid.UUID)
	return principal
}

// GetUser extracts the authenticated user
func GetUser(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	u, ok := user.(*models.User)
	return u, ok
}

// GetAuthClaims extracts the bearer token claims, when the request used one
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
