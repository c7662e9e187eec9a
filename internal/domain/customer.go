package domain

import (
	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"           // GORM ORM library
)

// Customer Model
type Customer struct {
	ID           string `gorm:"primaryKey;size:36"`           // Primary key (UUID)
	CredentialID string `gorm:"uniqueIndex;size:36;not null"` // Foreign key to Credential, one-to-one
	Name         string `gorm:"not null"`                     // Customer name
	Address      string // Home address
	MobilePhone  string // Mobile phone number
	Email        string // Contact email
}

// BeforeCreate assigns a UUID primary key if none is set
func (c *Customer) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
