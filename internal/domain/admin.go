package domain

import (
	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"           // GORM ORM library
)

// Admin Model
type Admin struct {
	ID           string `gorm:"primaryKey;size:36"`           // Primary key (UUID)
	CredentialID string `gorm:"uniqueIndex;size:36;not null"` // Foreign key to Credential, one-to-one
	Name         string `gorm:"not null"`                     // Administrator name
	Email        string // Contact email
	Phone        string // Phone number
}

// BeforeCreate assigns a UUID primary key if none is set
func (a *Admin) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
