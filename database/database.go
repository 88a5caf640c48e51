// database.go - Handles database connection and setup

package database

import (
	"context"
	"fmt"
	"strings"

	"fruitpie-jobboard/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector maps a DATABASE_URL onto a gorm dialector.
//
//	sqlite:///./fruitpie.db   relative SQLite file
//	sqlite:////var/db/fp.db   absolute SQLite file
//	sqlite://                 in-memory SQLite
//	postgres://... postgresql://...
//	anything without a scheme is treated as a SQLite file path
func Dialector(databaseURL string) (gorm.Dialector, error) {
	switch {
	case databaseURL == "":
		return nil, fmt.Errorf("database: empty DATABASE_URL")
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL), nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" || path == ":memory:" {
			path = ":memory:"
		}
		return sqlite.Open(path), nil
	case strings.Contains(databaseURL, "://"):
		return nil, fmt.Errorf("database: unsupported DATABASE_URL scheme in %q", redact(databaseURL))
	default:
		return sqlite.Open(databaseURL), nil
	}
}

// Connect opens the database and creates the tables if needed.
// Unique-constraint violations surface as gorm.ErrDuplicatedKey.
func Connect(databaseURL string) (*gorm.DB, error) {
	// STEP 1: Pick the driver from the URL
	dialector, err := Dialector(databaseURL)
	if err != nil {
		return nil, err
	}

	// STEP 2: Open the connection
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,                                  // Driver errors become gorm.ErrDuplicatedKey etc.
		Logger:         logger.Default.LogMode(logger.Silent), // Requests are logged by the HTTP layer
	})
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	// Every pooled connection to :memory: would get its own empty database.
	if sd, ok := dialector.(*sqlite.Dialector); ok && sd.DSN == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	// STEP 3: Create or update the tables
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate auto-creates the users and job_posts tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.JobPost{}); err != nil {
		return fmt.Errorf("database: migrate: %w", err)
	}
	return nil
}

// Ping checks that the underlying connection pool can reach the database.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// redact hides the password of a URL-shaped DSN.
func redact(dsn string) string {
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		return dsn
	}
	creds, host, ok := strings.Cut(rest, "@")
	if !ok {
		return dsn
	}
	user, _, _ := strings.Cut(creds, ":")
	return scheme + "://" + user + ":***@" + host
}
