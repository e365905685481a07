// Command procookctl runs maintenance tasks against the ProCook database.
package main

import (
	"fmt"
	"os"
	"time"

	"procook-backend/internal/config"
	"procook-backend/internal/database"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	// envFile is set by the --env-file flag.
	envFile string

	// connectAttempts and connectDelay control how long to wait for Postgres.
	connectAttempts int
	connectDelay    time.Duration

	cfg *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "procookctl",
	Short:         "Maintenance commands for the ProCook backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return loadConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading configuration")
	rootCmd.PersistentFlags().IntVar(&connectAttempts, "connect-attempts", 30, "how many times to try reaching the database")
	rootCmd.PersistentFlags().DurationVar(&connectDelay, "connect-delay", 2*time.Second, "pause between database connection attempts")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "procookctl %s\n", version)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		// connect skips the implicit migration so failures surface here
		db, err := connect()
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
		return nil
	},
}

func loadConfig() error {
	if err := godotenv.Load(envFile); err != nil {
		logrus.Debugf("No env file at %s, using system environment variables", envFile)
	}

	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if level, err := logrus.ParseLevel(loaded.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	cfg = loaded
	return nil
}

func connect() (*gorm.DB, error) {
	return connectWithRetry(cfg.DatabaseURL, connectAttempts, connectDelay)
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Silent keeps SQL and "record not found" noise out of command output
	opts := &database.Options{
		LogLevel:    logger.Silent,
		SkipMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
