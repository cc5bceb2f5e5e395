package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/internal/testutil"
)

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	first := &models.User{Name: "A", Email: "dup@example.com", PasswordHash: "x"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Role != models.RolePatient {
		t.Errorf("expected default role patient, got %q", first.Role)
	}

	err := repo.Create(ctx, &models.User{Name: "B", Email: "dup@example.com", PasswordHash: "y"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 user, got %d", count)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepo(db)

	if _, err := repo.FindByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRefreshTokens_RevokeAndSweep(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "u@example.com", models.RolePatient)
	now := time.Now()

	tokens := []*models.RefreshToken{
		{UserID: user.ID, TokenHash: "live", ExpiresAt: now.Add(time.Hour)},
		{UserID: user.ID, TokenHash: "expired", ExpiresAt: now.Add(-time.Hour)},
		{UserID: user.ID, TokenHash: "revoked", ExpiresAt: now.Add(time.Hour)},
	}
	for _, tok := range tokens {
		if err := repo.CreateRefreshToken(ctx, tok); err != nil {
			t.Fatalf("create token: %v", err)
		}
	}
	if err := repo.RevokeRefreshTokenByHash(ctx, "revoked"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := repo.FindRefreshTokenByHash(ctx, "revoked"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected revoked token to be hidden, got %v", err)
	}

	removed, err := repo.DeleteStaleRefreshTokens(ctx, now)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 stale tokens removed, got %d", removed)
	}

	live, err := repo.FindRefreshTokenByHash(ctx, "live")
	if err != nil {
		t.Fatalf("expected live token to survive: %v", err)
	}
	if live.User.ID != user.ID {
		t.Errorf("expected preloaded user %d, got %d", user.ID, live.User.ID)
	}
}
