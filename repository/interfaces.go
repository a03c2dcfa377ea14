package repository

import (
	"context"

	"blogapi/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
}

// PostRepositoryI defines operations on Post entities. Every query is
// scoped to the author, so posts of other users behave as absent.
type PostRepositoryI interface {
	Create(ctx context.Context, p *models.Post) error
	ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
	GetByIDForAuthor(ctx context.Context, id, authorID string) (*models.Post, error)
	UpdateForAuthor(ctx context.Context, id, authorID, title, content string) (*models.Post, error)
	DeleteForAuthor(ctx context.Context, id, authorID string) (bool, error)
}
