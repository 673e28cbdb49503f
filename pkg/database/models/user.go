package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Database model for an API user.
type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(72);not null" json:"-"` // Bcrypt hash, never serialized.
	CreatedAt time.Time `json:"createdAt"`
}

// Generate the id before inserting.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
