package domain

import (
	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"           // GORM ORM library
)

// RoleName is the closed set of permission classes a credential can hold.
type RoleName string

const (
	RoleCustomer RoleName = "CUSTOMER" // Regular café customer
	RoleAdmin    RoleName = "ADMIN"    // Administrator account
)

// Valid reports whether the role name is one of the known variants.
func (r RoleName) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Role Model
type Role struct {
	ID   string   `gorm:"primaryKey;size:36"`         // Primary key (UUID)
	Name RoleName `gorm:"uniqueIndex;size:32;not null"` // Unique role name
}

// BeforeCreate assigns a UUID primary key if none is set
func (r *Role) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
