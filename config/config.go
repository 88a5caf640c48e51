// config.go - Handles configuration for the project
//
// Values come from the environment, optionally seeded from a .env file.
// Every key has a development default so the board starts with no setup.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InsecureSecretKey is the signing secret used when SECRET_KEY is unset.
const InsecureSecretKey = "fruitpie-insecure-dev-secret-change-me"

type Config struct {
	DatabaseURL string        // sqlite:///path, postgres://..., or a bare SQLite path
	SecretKey   string        // HMAC secret for bearer tokens
	TokenTTL    time.Duration // lifetime of issued access tokens
	Port        string        // HTTP listen port
	LogLevel    string        // zerolog level name
	LogFormat   string        // "console" or "json"
	GinMode     string        // gin.ReleaseMode, gin.DebugMode or gin.TestMode
	SeedOnStart bool          // insert the sample postings when the table is empty
}

// UsingInsecureSecret reports whether the development secret is in use.
func (c *Config) UsingInsecureSecret() bool {
	return c.SecretKey == InsecureSecretKey
}

// Load reads envFile (if it exists) and then the environment.
// An empty envFile skips the .env step.
func Load(envFile string) (*Config, error) {
	// STEP 1: Seed the environment from .env (never overrides real env vars)
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) { // A missing file is fine
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	// STEP 2: Defaults, then environment variables on top
	v := viper.New()
	v.SetDefault("DATABASE_URL", "sqlite:///./fruitpie.db")
	v.SetDefault("SECRET_KEY", InsecureSecretKey)
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SEED_ON_START", true)
	v.AutomaticEnv() // Keys are read straight from the environment

	// STEP 3: Validate and convert
	minutes := v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")
	if minutes <= 0 {
		return nil, fmt.Errorf("config: ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %q",
			v.GetString("ACCESS_TOKEN_EXPIRE_MINUTES"))
	}

	return &Config{
		DatabaseURL: v.GetString("DATABASE_URL"),
		SecretKey:   v.GetString("SECRET_KEY"),
		TokenTTL:    time.Duration(minutes) * time.Minute,
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		GinMode:     v.GetString("GIN_MODE"),
		SeedOnStart: v.GetBool("SEED_ON_START"),
	}, nil
}
