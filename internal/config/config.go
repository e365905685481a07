package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	defaultSessionSecret = "dev-session-secret-change-in-production"
	defaultJWTSecret     = "dev-jwt-secret-change-in-production"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Session and token configuration
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	SessionMaxAge int    `mapstructure:"SESSION_MAX_AGE"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTTTLHours   int    `mapstructure:"JWT_TTL_HOURS"`

	// Revoked bearer tokens are remembered per process, up to this many
	RevokedTokenCapacity int `mapstructure:"REVOKED_TOKEN_CAPACITY"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Asset store configuration
	AssetStore     string `mapstructure:"ASSET_STORE"`
	UploadDir      string `mapstructure:"UPLOAD_DIR"`
	AssetBaseURL   string `mapstructure:"ASSET_BASE_URL"`
	MaxUploadBytes int64  `mapstructure:"MAX_UPLOAD_BYTES"`
	S3Bucket       string `mapstructure:"S3_BUCKET"`
	S3Region       string `mapstructure:"S3_REGION"`
	S3Endpoint     string `mapstructure:"S3_ENDPOINT"`
	S3AccessKeyID  string `mapstructure:"S3_ACCESS_KEY_ID"`
	S3SecretKey    string `mapstructure:"S3_SECRET_ACCESS_KEY"`
	S3PublicURL    string `mapstructure:"S3_PUBLIC_URL"`

	// Rating summary cache
	RatingCacheSize       int `mapstructure:"RATING_CACHE_SIZE"`
	RatingCacheTTLSeconds int `mapstructure:"RATING_CACHE_TTL_SECONDS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "procook")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Sessions last 24 hours, bearer tokens the same
	viper.SetDefault("SESSION_SECRET", defaultSessionSecret)
	viper.SetDefault("SESSION_MAX_AGE", 86400)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL_HOURS", 24)
	viper.SetDefault("REVOKED_TOKEN_CAPACITY", 10000)

	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	viper.SetDefault("ASSET_STORE", "local")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("ASSET_BASE_URL", "/uploads")
	viper.SetDefault("MAX_UPLOAD_BYTES", 5*1024*1024)
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_ACCESS_KEY_ID", "")
	viper.SetDefault("S3_SECRET_ACCESS_KEY", "")
	viper.SetDefault("S3_PUBLIC_URL", "")

	viper.SetDefault("RATING_CACHE_SIZE", 1024)
	viper.SetDefault("RATING_CACHE_TTL_SECONDS", 30)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.IsProduction() {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.SessionSecret == defaultSessionSecret {
			return fmt.Errorf("SESSION_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.AssetStore {
	case "local":
		if config.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR is required when ASSET_STORE=local")
		}
	case "s3":
		if config.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when ASSET_STORE=s3")
		}
	default:
		return fmt.Errorf("unknown ASSET_STORE %q", config.AssetStore)
	}

	if config.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
