package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"blogapi/models"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post owned by p.AuthorID.
func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return r.db.WithContext(ctx).Create(p).Error
}

// ListByAuthor returns all posts owned by authorID, oldest first.
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	posts := []models.Post{}
	err := r.db.WithContext(ctx).Where("author_id = ?", authorID).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByIDForAuthor returns the post only if it is owned by authorID.
// Posts owned by someone else are indistinguishable from absent ones.
func (r *PostRepository) GetByIDForAuthor(ctx context.Context, id, authorID string) (*models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p models.Post
	err := r.db.WithContext(ctx).Where("id = ? AND author_id = ?", id, authorID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// UpdateForAuthor sets title and content on the post if it is owned by
// authorID, returning the updated post or nil when no row matched.
func (r *PostRepository) UpdateForAuthor(ctx context.Context, id, authorID, title, content string) (*models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Updates(map[string]interface{}{"title": title, "content": content})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &models.Post{ID: id, Title: title, Content: content, AuthorID: authorID}, nil
}

// DeleteForAuthor removes the post if it is owned by authorID and
// reports whether a row was deleted.
func (r *PostRepository) DeleteForAuthor(ctx context.Context, id, authorID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res := r.db.WithContext(ctx).Where("id = ? AND author_id = ?", id, authorID).Delete(&models.Post{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
