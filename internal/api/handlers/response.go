package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the envelope every /api endpoint answers with
type Response struct {
	Success bool                `json:"success" example:"true"`
	Message string              `json:"message,omitempty" example:"Recipe created successfully!"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Count   *int64              `json:"count,omitempty"`
}

// ErrorResponse documents a failed request in the swagger annotations
type ErrorResponse struct {
	Success bool                `json:"success" example:"false"`
	Message string              `json:"message" example:"Recipe not found."`
	Errors  map[string][]string `json:"errors,omitempty"`
}

const invalidCredentialsField = "The provided credentials are incorrect."

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func respondList(c *gin.Context, data interface{}, count int64) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Count: &count})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// respondError maps err onto the envelope. Unclassified errors are logged and
// answered with fallback so internal detail never reaches the client.
func respondError(c *gin.Context, err error, fallback string) {
	if verrs, ok := apperrors.AsValidation(err); ok {
		c.JSON(http.StatusUnprocessableEntity, Response{Success: false, Message: verrs.Message, Errors: verrs.Fields})
		return
	}

	var notFound *apperrors.NotFoundError
	var conflict *apperrors.ConflictError
	var authn *apperrors.AuthenticationError
	var authz *apperrors.AuthorizationError
	var internal *apperrors.InternalError
	switch {
	case errors.As(err, &notFound):
		respondFailure(c, http.StatusNotFound, entityMessage(notFound.Entity, "not found."))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, Response{
			Success: false,
			Message: apperrors.ErrInvalidCredentials.Error(),
			Errors:  map[string][]string{"email": {invalidCredentialsField}},
		})
	case errors.As(err, &authn):
		respondFailure(c, http.StatusUnauthorized, authn.Message)
	case errors.As(err, &authz):
		respondFailure(c, http.StatusForbidden, authz.Message)
	case errors.As(err, &conflict):
		respondFailure(c, http.StatusConflict, entityMessage(conflict.Entity, "was changed by another request. Reload it and try again."))
	case apperrors.IsAlreadyExists(err):
		respondFailure(c, http.StatusConflict, err.Error())
	case errors.As(err, &internal):
		logger.WithContext(c.Request.Context()).
			WithError(internal.Err).
			WithFields(map[string]interface{}{"op": internal.Op, "path": c.FullPath()}).
			Error(fallback)
		respondFailure(c, http.StatusInternalServerError, fallback)
	default:
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.FullPath()).
			Error(fallback)
		respondFailure(c, http.StatusInternalServerError, fallback)
	}
}

func entityMessage(entity, rest string) string {
	if entity == "" {
		return rest
	}
	return strings.ToUpper(entity[:1]) + entity[1:] + " " + rest
}

// pathID parses a uuid path parameter. A malformed id names nothing, so it is
// answered like a missing entity.
func pathID(c *gin.Context, name, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondFailure(c, http.StatusNotFound, entityMessage(entity, "not found."))
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads limit and offset. Out-of-range limits are clamped by the services.
func pageParams(c *gin.Context) (int, int, error) {
	limit, err := intQuery(c, "limit")
	if err != nil {
		return 0, 0, err
	}
	offset, err := intQuery(c, "offset")
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func intQuery(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(key, fmt.Sprintf("The %s must be a number.", key))
	}
	return n, nil
}
