package testutils

import (
	"time"

	"procook-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plaintext behind every factory-built user
const DefaultPassword = "Password123"

var defaultPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

func strPtr(s string) *string { return &s }

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Jane Cook",
		Email:        "jane." + id.String()[:8] + "@procook.test",
		PasswordHash: defaultPasswordHash,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// RecipeFactory provides methods to create test Recipe data
type RecipeFactory struct{}

// NewRecipeFactory creates a new RecipeFactory
func NewRecipeFactory() *RecipeFactory {
	return &RecipeFactory{}
}

// Create creates a test Recipe with two ingredients and no owner
func (f *RecipeFactory) Create() *models.Recipe {
	return &models.Recipe{
		Title:            "Tomato Soup",
		ShortDescription: "A quick weeknight tomato soup.",
		CuisineType:      "Italian",
		Category:         "Soup",
		PrepTime:         10,
		CookTime:         20,
		TotalTime:        30,
		ServingSize:      4,
		PreparationNotes: strPtr("Simmer the tomatoes with garlic, then blend until smooth."),
		Ingredients: []models.Ingredient{
			{Name: "Tomatoes", Measurement: "800g", Position: 1},
			{Name: "Garlic", Measurement: "2 cloves", AllergenInfo: strPtr("none"), Position: 2},
		},
	}
}

// WithOwner sets the owning user
func (f *RecipeFactory) WithOwner(ownerID uuid.UUID) *models.Recipe {
	recipe := f.Create()
	recipe.UserID = &ownerID
	return recipe
}

// WithTitle sets a custom title
func (f *RecipeFactory) WithTitle(ownerID uuid.UUID, title string) *models.Recipe {
	recipe := f.WithOwner(ownerID)
	recipe.Title = title
	return recipe
}

// CommentFactory provides methods to create test Comment data
type CommentFactory struct{}

// NewCommentFactory creates a new CommentFactory
func NewCommentFactory() *CommentFactory {
	return &CommentFactory{}
}

// Create creates a root comment
func (f *CommentFactory) Create(recipeID, authorID uuid.UUID) *models.Comment {
	return &models.Comment{
		RecipeID: recipeID,
		UserID:   &authorID,
		Body:     "Lovely recipe, made it twice.",
	}
}

// Reply creates a reply to parent
func (f *CommentFactory) Reply(parent *models.Comment, authorID uuid.UUID) *models.Comment {
	comment := f.Create(parent.RecipeID, authorID)
	comment.ParentID = &parent.ID
	comment.Body = "Thanks for trying it!"
	return comment
}

// RatingFactory provides methods to create test Rating data
type RatingFactory struct{}

// NewRatingFactory creates a new RatingFactory
func NewRatingFactory() *RatingFactory {
	return &RatingFactory{}
}

// Create creates a rating with the given value
func (f *RatingFactory) Create(recipeID, userID uuid.UUID, value int16) *models.Rating {
	return &models.Rating{
		RecipeID: recipeID,
		UserID:   &userID,
		Value:    value,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User    *UserFactory
	Recipe  *RecipeFactory
	Comment *CommentFactory
	Rating  *RatingFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Recipe:  NewRecipeFactory(),
		Comment: NewCommentFactory(),
		Rating:  NewRatingFactory(),
	}
}
