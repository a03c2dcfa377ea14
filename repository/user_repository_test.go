package repository

import (
	"context"
	"testing"

	"blogapi/internal/db"
	"blogapi/models"
)

func TestUserRepository_CRUDAndQueries(t *testing.T) {
	d, err := db.OpenInMemory("userrepo")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(d) })
	if err := db.Migrate(d); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := NewUserRepository(d)
	ctx := context.Background()

	// Create
	u := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected generated id, got: %+v", u)
	}

	// GetByID
	g, err := repo.GetByID(ctx, u.ID)
	if err != nil || g == nil || g.Username != "alice" {
		t.Fatalf("get by id: %v %+v", err, g)
	}

	// GetByUsername
	g2, err := repo.GetByUsername(ctx, "alice")
	if err != nil || g2 == nil || g2.ID != u.ID {
		t.Fatalf("get by username: %v %+v", err, g2)
	}

	// Unknown username resolves to nil, nil
	g3, err := repo.GetByUsername(ctx, "nobody")
	if err != nil || g3 != nil {
		t.Fatalf("expected nil for unknown username, got: %+v err=%v", g3, err)
	}

	// GetByUsernameOrEmail matches on either field
	g4, err := repo.GetByUsernameOrEmail(ctx, "someoneelse", "alice@example.com")
	if err != nil || g4 == nil || g4.ID != u.ID {
		t.Fatalf("get by username or email: %v %+v", err, g4)
	}
}

func TestUserRepository_UsernameUnique(t *testing.T) {
	d, err := db.OpenInMemory("userrepo-unique")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(d) })
	if err := db.Migrate(d); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := NewUserRepository(d)
	ctx := context.Background()

	if err := repo.Create(ctx, &models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err = repo.Create(ctx, &models.User{Username: "bob", Email: "other@example.com", PasswordHash: "x"})
	if err == nil {
		t.Fatalf("expected unique constraint violation for duplicate username")
	}
}
