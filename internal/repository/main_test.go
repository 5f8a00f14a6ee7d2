package repository

import (
	"strings"
	"testing"

	"inkspot/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Review{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Repo Tester",
		Username: "repo_" + strings.SplitN(email, "@", 2)[0],
		Email:    email,
		Password: "hashed",
		UserType: models.UserTypeClient,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}
