package repository

import (
	"testing"

	"skillswap/internal/models"
)

func TestMessageRepositoryListActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)

	active := &models.AdminMessage{Title: "Welcome", Body: "Hello", Severity: models.SeverityInfo, IsActive: true}
	inactive := &models.AdminMessage{Title: "Old", Body: "Gone", Severity: models.SeverityWarning, IsActive: false}
	if err := repo.Create(testCtx(), active); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Create(testCtx(), inactive); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := repo.List(testCtx(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(all))
	}

	activeOnly, err := repo.List(testCtx(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(activeOnly) != 1 || activeOnly[0].Title != "Welcome" {
		t.Fatalf("active filter failed: %+v", activeOnly)
	}
}

func TestMessageRepositoryDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)

	err := repo.Delete(testCtx(), 42)
	assertRepoErrorCode(t, err, "NOT_FOUND")
}
