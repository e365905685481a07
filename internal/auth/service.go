package auth

import (
	"fmt"
	"time"

	"procook-backend/internal/database/models"
	apperrors "procook-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
)

const defaultRevokedTokenCapacity = 10000

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"user_id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
	Email                string `json:"email" example:"demo@procook.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenResponse is handed to API clients after register or login
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// TokenService issues and validates bearer tokens.
//
// Revocations live in process memory: they do not survive a restart and are
// not shared between replicas. Each entry is held until the token would have
// expired anyway, unless the list is full, in which case the oldest revocation
// is dropped and a warning is logged.
type TokenService struct {
	config  *AuthConfig
	revoked *expirable.LRU[string, time.Time]
}

// NewTokenService creates a new token service
func NewTokenService(config *AuthConfig) (*TokenService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	capacity := config.RevokedTokenCapacity
	if capacity == 0 {
		capacity = defaultRevokedTokenCapacity
	}

	return &TokenService{
		config:  config,
		revoked: expirable.NewLRU[string, time.Time](capacity, warnLiveEviction, config.TokenTTL),
	}, nil
}

// warnLiveEviction reports a revocation pushed out while its token is still valid
func warnLiveEviction(tokenID string, expiresAt time.Time) {
	if time.Now().Before(expiresAt) {
		logrus.WithFields(logrus.Fields{
			"token_id":   tokenID,
			"expires_at": expiresAt,
		}).Warn("Revoked token list is full, an unexpired revocation was dropped")
	}
}

// GenerateJWT creates a JWT token for the user
func (s *TokenService) GenerateJWT(user *models.User) (*TokenResponse, error) {
	now := time.Now()
	expiresAt := now.Add(s.config.TokenTTL)
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{AccessToken: signed, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *TokenService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer))

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if s.revoked.Contains(claims.ID) {
		return nil, fmt.Errorf("%w: token has been revoked", apperrors.ErrInvalidToken)
	}
	return claims, nil
}

// Revoke rejects the token for the rest of its lifetime
func (s *TokenService) Revoke(claims *AuthClaims) {
	if claims == nil || claims.ID == "" {
		return
	}
	expiresAt := time.Now().Add(s.config.TokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	s.revoked.Add(claims.ID, expiresAt)
}

// PrincipalID parses the user id carried by the claims
func (c *AuthClaims) PrincipalID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}
