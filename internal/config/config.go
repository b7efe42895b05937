package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// ErrDatabaseURLMissing is returned when the required DATABASE_URL setting is
// absent or empty. This is fatal at startup; nothing in the module recovers
// from it.
var ErrDatabaseURLMissing = errors.New("DATABASE_URL is not set")

// Config holds process-level settings for the NAV reader.
type Config struct {
	// DatabaseURL is a MySQL DSN, e.g.
	// user:pass@tcp(host:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	DatabaseURL string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; the environment itself always wins.
// The file is optional, the DATABASE_URL value is not.
func Load() (*Config, error) {
	// Single location only. No parent-directory guessing.
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, ErrDatabaseURLMissing
	}

	return &Config{DatabaseURL: dsn}, nil
}
