package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account.
// It maps to the `users` table.
type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Username     string `gorm:"uniqueIndex;size:256;not null" json:"username"`
	Email        string `gorm:"size:256;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	// Posts are removed together with their author.
	Posts []Post `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a UUID primary key when none was set by the caller.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (User) TableName() string { return "users" }
