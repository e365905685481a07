package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"procook-backend/internal/logger"
	"procook-backend/internal/service"

	"gopkg.in/yaml.v3"
)

//go:embed data/seed.yaml
var defaultSeed []byte

// IngredientData is one ingredient line of a seeded recipe
type IngredientData struct {
	Name               string  `yaml:"name"`
	Measurement        string  `yaml:"measurement"`
	SubstitutionOption *string `yaml:"substitution_option,omitempty"`
	AllergenInfo       *string `yaml:"allergen_info,omitempty"`
}

// RecipeData is a seeded recipe
type RecipeData struct {
	Title            string           `yaml:"title"`
	ShortDescription string           `yaml:"short_description"`
	CuisineType      string           `yaml:"cuisine_type"`
	Category         string           `yaml:"category"`
	PrepTime         int              `yaml:"prep_time"`
	CookTime         int              `yaml:"cook_time"`
	ServingSize      int              `yaml:"serving_size"`
	PreparationNotes string           `yaml:"preparation_notes,omitempty"`
	Ingredients      []IngredientData `yaml:"ingredients"`
}

// UserData is a seeded account with the recipes it owns
type UserData struct {
	Name     string       `yaml:"name"`
	Email    string       `yaml:"email"`
	Password string       `yaml:"password"`
	Recipes  []RecipeData `yaml:"recipes,omitempty"`
}

// File is the layout of a seed YAML file
type File struct {
	Users []UserData `yaml:"users"`
}

// Parse decodes a seed file
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &file, nil
}

// Default returns the built-in demo data
func Default() (*File, error) {
	return Parse(defaultSeed)
}

// LoadFile reads a seed file from disk
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// UserCounter reports how many accounts exist
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Result summarizes a seeding run
type Result struct {
	Skipped bool
	Users   int
	Recipes int
}

// Seeder writes seed data through the account and recipe services, so seeded
// rows pass the same validation as user submissions.
type Seeder struct {
	users    UserCounter
	accounts service.AccountServiceInterface
	recipes  service.RecipeServiceInterface
}

// NewSeeder creates a new seeder
func NewSeeder(users UserCounter, accounts service.AccountServiceInterface, recipes service.RecipeServiceInterface) *Seeder {
	return &Seeder{users: users, accounts: accounts, recipes: recipes}
}

// Run seeds file into an empty database. Any existing account skips the run.
func (s *Seeder) Run(ctx context.Context, file *File) (*Result, error) {
	log := logger.WithContext(ctx)

	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		log.WithField("users", count).Info("database already has data, skipping seed")
		return &Result{Skipped: true}, nil
	}

	result := &Result{}
	for _, u := range file.Users {
		user, err := s.accounts.Register(ctx, &service.RegisterRequest{
			Name:                 u.Name,
			Email:                u.Email,
			Password:             u.Password,
			PasswordConfirmation: u.Password,
		})
		if err != nil {
			return result, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		result.Users++

		for _, r := range u.Recipes {
			if _, err := s.recipes.Create(ctx, user.ID, r.input()); err != nil {
				return result, fmt.Errorf("failed to seed recipe %q: %w", r.Title, err)
			}
			result.Recipes++
		}
	}

	log.WithFields(map[string]interface{}{
		"users":   result.Users,
		"recipes": result.Recipes,
	}).Info("seed data loaded")
	return result, nil
}

func (r RecipeData) input() *service.RecipeInput {
	in := &service.RecipeInput{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		CuisineType:      r.CuisineType,
		Category:         r.Category,
		PrepTime:         r.PrepTime,
		CookTime:         r.CookTime,
		ServingSize:      r.ServingSize,
		Ingredients:      make([]service.IngredientInput, 0, len(r.Ingredients)),
	}
	if r.PreparationNotes != "" {
		notes := r.PreparationNotes
		in.PreparationNotes = &notes
	}
	for _, ing := range r.Ingredients {
		in.Ingredients = append(in.Ingredients, service.IngredientInput{
			Name:               ing.Name,
			Measurement:        ing.Measurement,
			SubstitutionOption: ing.SubstitutionOption,
			AllergenInfo:       ing.AllergenInfo,
		})
	}
	return in
}
