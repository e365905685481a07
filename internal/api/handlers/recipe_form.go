package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"procook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const invalidIngredientsMessage = "Invalid ingredients data."

var errUploadTooLarge = errors.New("upload exceeds the size limit")

// recipeFields is a recipe submission before numbers and ingredients are decoded.
// JSON and multipart requests both land here.
type recipeFields struct {
	Title             string          `json:"title"`
	ShortDescription  string          `json:"short_description"`
	CuisineType       string          `json:"cuisine_type"`
	Category          string          `json:"category"`
	PrepTime          json.RawMessage `json:"prep_time" swaggertype:"integer"`
	CookTime          json.RawMessage `json:"cook_time" swaggertype:"integer"`
	ServingSize       json.RawMessage `json:"serving_size" swaggertype:"integer"`
	PreparationNotes  *string         `json:"preparation_notes"`
	Ingredients       json.RawMessage `json:"ingredients" swaggertype:"array,object"`
	ExpectedUpdatedAt *string         `json:"expected_updated_at"`
}

// readRecipeInput decodes the request into a service.RecipeInput. Values that
// cannot be decoded are reported through DecodeErrors so the client sees them
// next to the rest of the validation messages.
func readRecipeInput(c *gin.Context, maxUploadBytes int64) (*service.RecipeInput, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	var fields recipeFields
	var image *service.ImageUpload
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, uploadError(err)
		}
		fields = multipartFields(form)
		if image, err = readImage(form); err != nil {
			return nil, err
		}
	} else if err := c.ShouldBindJSON(&fields); err != nil {
		return nil, uploadError(err)
	}

	input := &service.RecipeInput{
		Title:            fields.Title,
		ShortDescription: fields.ShortDescription,
		CuisineType:      fields.CuisineType,
		Category:         fields.Category,
		PreparationNotes: fields.PreparationNotes,
		Image:            image,
		DecodeErrors:     make(map[string]string),
	}

	numbers := []struct {
		key string
		raw json.RawMessage
		dst *int
	}{
		{"prep_time", fields.PrepTime, &input.PrepTime},
		{"cook_time", fields.CookTime, &input.CookTime},
		{"serving_size", fields.ServingSize, &input.ServingSize},
	}
	for _, n := range numbers {
		v, ok := parseNumber(n.raw)
		if !ok {
			input.DecodeErrors[n.key] = service.RecipeNumberMessages[n.key]
			continue
		}
		*n.dst = v
	}

	ingredients, ok := parseIngredients(fields.Ingredients)
	if !ok {
		input.DecodeErrors["ingredients"] = invalidIngredientsMessage
	}
	input.Ingredients = ingredients

	if fields.ExpectedUpdatedAt != nil && strings.TrimSpace(*fields.ExpectedUpdatedAt) != "" {
		ts, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(*fields.ExpectedUpdatedAt))
		if err != nil {
			input.DecodeErrors["expected_updated_at"] = "The expected updated at field must be an RFC 3339 timestamp."
		} else {
			input.ExpectedUpdatedAt = &ts
		}
	}

	return input, nil
}

func multipartFields(form *multipart.Form) recipeFields {
	value := func(key string) (string, bool) {
		vs, ok := form.Value[key]
		if !ok || len(vs) == 0 {
			return "", false
		}
		return vs[0], true
	}
	quoted := func(key string) json.RawMessage {
		v, ok := value(key)
		if !ok {
			return nil
		}
		return json.RawMessage(strconv.Quote(strings.TrimSpace(v)))
	}

	var f recipeFields
	f.Title, _ = value("title")
	f.ShortDescription, _ = value("short_description")
	f.CuisineType, _ = value("cuisine_type")
	f.Category, _ = value("category")
	f.PrepTime = quoted("prep_time")
	f.CookTime = quoted("cook_time")
	f.ServingSize = quoted("serving_size")
	if notes, ok := value("preparation_notes"); ok {
		f.PreparationNotes = &notes
	}
	f.Ingredients = quoted("ingredients")
	if ts, ok := value("expected_updated_at"); ok {
		f.ExpectedUpdatedAt = &ts
	}
	return f
}

func readImage(form *multipart.Form) (*service.ImageUpload, error) {
	files := form.File["image"]
	if len(files) == 0 {
		return nil, nil
	}
	header := files[0]
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded image: %w", err)
	}
	return &service.ImageUpload{Filename: header.Filename, Data: data}, nil
}

// parseNumber accepts a JSON number or a string holding one. An absent value
// decodes to zero and is left to the range checks.
func parseNumber(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return int(i), true
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// parseIngredients accepts an array or, as multipart forms send it, a string
// holding a JSON array.
func parseIngredients(raw json.RawMessage) ([]service.IngredientInput, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if strings.TrimSpace(encoded) == "" {
			return nil, true
		}
		raw = json.RawMessage(encoded)
	}
	var ingredients []service.IngredientInput
	if err := json.Unmarshal(raw, &ingredients); err != nil {
		return nil, false
	}
	return ingredients, true
}

func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errUploadTooLarge
	}
	return &bodyError{err: err}
}

// bodyError marks a request body that could not be parsed at all
type bodyError struct {
	err error
}

func (e *bodyError) Error() string { return e.err.Error() }

func (e *bodyError) Unwrap() error { return e.err }
