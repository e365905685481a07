package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError carries user-facing messages keyed by field name.
// Keys follow the request shape, e.g. "title" or "ingredients.3.name".
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s - %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// Add appends a message for field
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Has reports whether field already carries a message
func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

// Empty reports whether no field messages were collected
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil returns the error when messages were collected, otherwise nil.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

// AuthenticationError represents a request without a usable principal
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents an authenticated principal acting on something it may not change
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConflictError represents a stale write detected by an optimistic concurrency check
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s was modified by another request", e.Entity)
}

// InternalError wraps an unexpected failure. The cause is kept for logs, never for clients.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
	ErrRecipeNotFound  = &NotFoundError{Entity: "recipe"}
	ErrCommentNotFound = &NotFoundError{Entity: "comment"}
	ErrRatingNotFound  = &NotFoundError{Entity: "rating"}
	ErrAssetNotFound   = &NotFoundError{Entity: "asset"}
)

// Already Exists Errors
var (
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Conflict Errors
var (
	ErrRecipeConflict = &ConflictError{Entity: "recipe"}
)

// Authentication Errors
var (
	ErrUnauthenticated    = &AuthenticationError{Message: "User not authenticated."}
	ErrInvalidCredentials = &AuthenticationError{Message: "Invalid credentials. Please check your email and password."}
	ErrInvalidToken       = &AuthenticationError{Message: "Invalid or expired token."}
)

// Authorization Errors
var (
	ErrRecipeEditForbidden    = &AuthorizationError{Message: "You do not have permission to edit this recipe."}
	ErrRecipeDeleteForbidden  = &AuthorizationError{Message: "You do not have permission to delete this recipe."}
	ErrCommentUpdateForbidden = &AuthorizationError{Message: "Unauthorized to update this comment."}
	ErrCommentDeleteForbidden = &AuthorizationError{Message: "Unauthorized to delete this comment."}
	ErrSelfRatingForbidden    = &AuthorizationError{Message: "You cannot rate your own recipe."}
)

// Configuration Errors
var (
	ErrUnknownAssetStore = &ConfigurationError{Message: "ASSET_STORE must be local or s3"}
	ErrS3BucketMissing   = &ConfigurationError{Message: "S3_BUCKET is required when ASSET_STORE=s3"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// AsValidation extracts the ValidationError from an error chain
func AsValidation(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsInternal checks if an error is an InternalError
func IsInternal(err error) bool {
	var internalErr *InternalError
	return errors.As(err, &internalErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a ValidationError with a single field message
func NewValidationError(field, message string) error {
	v := &ValidationError{Message: "Validation failed."}
	v.Add(field, message)
	return v
}

// NewValidationErrors creates an empty ValidationError to collect field messages into
func NewValidationErrors(message string) *ValidationError {
	return &ValidationError{Message: message, Fields: make(map[string][]string)}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewInternalError wraps err as an InternalError for op
func NewInternalError(op string, err error) error {
	return &InternalError{Op: op, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
