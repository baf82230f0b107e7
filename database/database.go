package database

import (
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"aice/models"
)

// Connect opens the SQLite knowledge database at dbPath and runs migrations.
// The returned handle is owned by the caller; nothing here is kept global so
// the store instance can be constructed and passed in explicitly.
func Connect(dbPath string) (*gorm.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")

	if err := db.AutoMigrate(&models.QuestionRecord{}); err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}
