package domain

import (
	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"           // GORM ORM library
)

// Credential Model
type Credential struct {
	ID       string `gorm:"primaryKey;size:36"`           // Primary key (UUID)
	Username string `gorm:"uniqueIndex;size:64;not null"` // Unique username, stored lowercase
	Password string `gorm:"not null"`                     // Hashed password
	RoleID   string `gorm:"size:36;not null"`             // Foreign key to Role
	Role     Role   // Role attached to this credential
}

// BeforeCreate assigns a UUID primary key if none is set
func (c *Credential) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
