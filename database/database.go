package database

import (
	"fmt"

	"portfolio-api/internal/domain/inbox"
	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/domain/site"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and migrates the schema. The returned handle is
// wrapped by the store and passed to handlers; nothing else holds it.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	fmt.Println("✅ Connected and migrated successfully")
	return db, nil
}

// Migrate creates or updates the four collections. Exported so tests can run
// the same migrations against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&portfolio.Artwork{},
		&inbox.ContactMessage{},
		&inbox.NewsletterSignup{},
		&site.Settings{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
