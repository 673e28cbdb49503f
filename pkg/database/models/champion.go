package models

import (
	"leaguecatalog/pkg/roles"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Database model for a catalog champion.
type Champion struct {
	ID        string      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"` // Canonical name, used as lookup key.
	Role      roles.Roles `gorm:"type:champion_role[];not null" json:"role"`
	ImagePath string      `gorm:"type:text;not null" json:"imagePath"` // Public URL of the stored image.
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Generate the id before inserting.
func (c *Champion) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
