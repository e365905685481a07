package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	apperrors "procook-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	personNamePattern   = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailAddressPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// NewValidator returns a validator that reports fields by their json names and
// knows the custom tags used by the request types in this package.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("email_address", func(fl validator.FieldLevel) bool {
		return emailAddressPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})
	return v
}

// isStrongPassword requires an upper case letter, a lower case letter and a digit
func isStrongPassword(p string) bool {
	var upper, lower, digit bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// fieldMessages maps "<field path>|<tag>" to the message returned to clients.
// List indexes in the path are written as "*".
type fieldMessages map[string]string

// collect validates s and gathers one message per failing field. The returned
// ValidationError may be empty; callers add their own checks and call OrNil.
func collect(v *validator.Validate, s interface{}, message string, messages fieldMessages) (*apperrors.ValidationError, error) {
	verrs := apperrors.NewValidationErrors(message)
	if err := collectInto(verrs, v, s, messages); err != nil {
		return nil, err
	}
	return verrs, nil
}

// collectInto adds validator failures to verrs, skipping fields that already
// carry a message.
func collectInto(verrs *apperrors.ValidationError, v *validator.Validate, s interface{}, messages fieldMessages) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		if verrs.Has(field) {
			continue
		}
		msg, ok := messages[wildcardPath(field)+"|"+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("The %s field is invalid.", strings.ReplaceAll(lastSegment(field), "_", " "))
		}
		verrs.Add(field, msg)
	}
	return nil
}

// fieldPath turns "RecipeInput.ingredients[3].name" into "ingredients.3.name"
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	namespace = strings.ReplaceAll(namespace, "[", ".")
	return strings.ReplaceAll(namespace, "]", "")
}

func wildcardPath(field string) string {
	parts := strings.Split(field, ".")
	for i, p := range parts {
		if _, err := strconv.Atoi(p); err == nil {
			parts[i] = "*"
		}
	}
	return strings.Join(parts, ".")
}

func lastSegment(field string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		return field[i+1:]
	}
	return field
}

// trimOptional trims s and turns an empty result into nil
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
