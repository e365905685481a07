package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "recipe"}
		assert.Equal(t, "recipe not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundError{Entity: "recipe"}, &NotFoundError{Entity: "recipe"}))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrRecipeNotFound, ErrCommentNotFound))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to load recipe: %w", ErrRecipeNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrRecipeNotFound))
		assert.False(t, IsNotFound(ErrSelfRatingForbidden))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
	assert.Equal(t, "user already exists", (&AlreadyExistsError{Entity: "user"}).Error())
	assert.True(t, IsAlreadyExists(ErrUserExists))
	assert.False(t, IsAlreadyExists(ErrUserNotFound))
}

func TestValidationError(t *testing.T) {
	t.Run("collects messages per field", func(t *testing.T) {
		v := NewValidationErrors("Recipe validation failed")
		assert.True(t, v.Empty())
		assert.Nil(t, v.OrNil())

		v.Add("title", "Recipe title must be at least 3 characters.")
		v.Add("ingredients.3.name", "Ingredient name is required.")

		require.Error(t, v.OrNil())
		assert.True(t, v.Has("title"))
		assert.False(t, v.Has("category"))
		assert.Equal(t, []string{"Ingredient name is required."}, v.Fields["ingredients.3.name"])
	})

	t.Run("Error message is deterministic", func(t *testing.T) {
		v := NewValidationErrors("x")
		v.Add("b", "second")
		v.Add("a", "first")
		assert.Equal(t, "validation error: a - first, b - second", v.Error())
	})

	t.Run("Error message without fields", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("AsValidation through wrapping", func(t *testing.T) {
		err := fmt.Errorf("create: %w", NewValidationError("comment", "Comment text is required."))
		v, ok := AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, []string{"Comment text is required."}, v.Fields["comment"])
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrRecipeNotFound))
	})
}

func TestInternalError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError("delete account", cause)

	assert.True(t, IsInternal(err))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "delete account: connection reset", err.Error())
}

func TestHelperFunctions(t *testing.T) {
	assert.True(t, IsAuthentication(ErrUnauthenticated))
	assert.True(t, IsAuthentication(NewAuthenticationError("x")))
	assert.False(t, IsAuthentication(ErrRecipeEditForbidden))

	assert.True(t, IsAuthorization(ErrSelfRatingForbidden))
	assert.True(t, IsAuthorization(fmt.Errorf("wrapped: %w", ErrCommentDeleteForbidden)))
	assert.False(t, IsAuthorization(ErrUnauthenticated))

	assert.True(t, IsConflict(ErrRecipeConflict))
	assert.Equal(t, "recipe was modified by another request", ErrRecipeConflict.Error())

	assert.True(t, IsConfiguration(ErrS3BucketMissing))
	assert.False(t, IsConfiguration(ErrRecipeNotFound))
}
