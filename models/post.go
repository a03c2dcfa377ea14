package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a blog post with a many-to-one relation to User via AuthorID.
// It maps to the `posts` table.
type Post struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Title    string `gorm:"size:256;not null" json:"title"`
	Content  string `gorm:"size:256;not null" json:"content"`
	AuthorID string `gorm:"size:36;not null;index" json:"authorId"`
}

// BeforeCreate assigns a UUID primary key when none was set by the caller.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (Post) TableName() string { return "posts" }
