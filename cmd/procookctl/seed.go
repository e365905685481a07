package main

import (
	"context"
	"fmt"
	"time"

	"procook-backend/internal/database"
	"procook-backend/internal/repository"
	"procook-backend/internal/seed"
	"procook-backend/internal/service"
	"procook-backend/internal/storage"

	"github.com/spf13/cobra"
)

// seedFile is set by the --file flag. Empty means the built-in demo data.
var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users and recipes into an empty database",
	Long: `Load demo users and recipes into an empty database.

Seeding is skipped when any account already exists. Rows are written through
the regular services, so seed files are validated like user submissions.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file (default: built-in demo data)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	file, err := loadSeedFile()
	if err != nil {
		return err
	}

	db, err := connect()
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	assets, err := storage.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init asset store: %w", err)
	}

	store := repository.NewStore(db)
	validator := service.NewValidator()
	cache := service.NewRatingSummaryCache(cfg.RatingCacheSize, time.Duration(cfg.RatingCacheTTLSeconds)*time.Second)
	seeder := seed.NewSeeder(
		store.Users(),
		service.NewAccountService(store, assets, cache, validator),
		service.NewRecipeService(store, assets, service.NewNotesRenderer(), cache, validator),
	)

	result, err := seeder.Run(ctx, file)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Skipped {
		fmt.Fprintln(out, "Database already has users, nothing seeded")
		return nil
	}
	fmt.Fprintf(out, "Seeded %d user(s) and %d recipe(s)\n", result.Users, result.Recipes)
	return nil
}

func loadSeedFile() (*seed.File, error) {
	if seedFile == "" {
		return seed.Default()
	}
	return seed.LoadFile(seedFile)
}
