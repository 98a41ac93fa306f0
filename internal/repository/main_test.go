package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"skillswap/internal/database"
	"skillswap/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema applied.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test keeps tests isolated while
	// letting the connection pool share state.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string, overrides ...func(*models.User)) *models.User {
	t.Helper()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		IsPublic: true,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestSkill(t *testing.T, db *gorm.DB, name, category string) *models.Skill {
	t.Helper()

	skill := &models.Skill{Name: name, Category: category}
	if err := db.Create(skill).Error; err != nil {
		t.Fatalf("failed to create test skill: %v", err)
	}
	return skill
}

func createTestAssociation(t *testing.T, db *gorm.DB, user *models.User, skill *models.Skill, role models.SkillRole, level string) *models.UserSkill {
	t.Helper()

	assoc := &models.UserSkill{
		UserID:  user.ID,
		SkillID: skill.ID,
		Role:    role,
		Level:   level,
	}
	if err := db.Create(assoc).Error; err != nil {
		t.Fatalf("failed to create test association: %v", err)
	}
	return assoc
}

func createTestSwap(t *testing.T, db *gorm.DB, requester, recipient *models.User, offered, requested *models.UserSkill, status models.SwapStatus) *models.SwapRequest {
	t.Helper()

	swap := &models.SwapRequest{
		RequesterID:      requester.ID,
		RecipientID:      recipient.ID,
		OfferedSkillID:   offered.ID,
		RequestedSkillID: requested.ID,
		Status:           status,
	}
	if err := db.Create(swap).Error; err != nil {
		t.Fatalf("failed to create test swap: %v", err)
	}
	return swap
}

func testCtx() context.Context {
	return context.Background()
}

func assertRepoErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}
