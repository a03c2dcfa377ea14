package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"blogapi/internal/auth"
	"blogapi/internal/db"
	"blogapi/models"
	"blogapi/repository"
)

// OpenInMemoryDB opens a named in-memory SQLite database and applies migrations.
// The DB is closed automatically via t.Cleanup. Use distinct names to keep
// tests isolated; a shared cache memory database persists per name.
func OpenInMemoryDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	d, err := db.OpenInMemory(name)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(d) })
	if err := db.Migrate(d); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return d
}

// CreateUser inserts a user with the given credentials and returns it.
func CreateUser(t *testing.T, d *gorm.DB, username, email, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &models.User{Username: username, Email: email, PasswordHash: hash}
	if err := repository.NewUserRepository(d).Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// SignToken returns a signed JWT for the given user with no expiry.
func SignToken(t *testing.T, secret string, u *models.User) string {
	t.Helper()
	tok, err := auth.SignToken(secret, 0, u)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}
