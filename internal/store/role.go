package store

import (
	"context" // Context for DB operations
	"errors"  // Error inspection

	"cafetaria/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// RoleStore is the typed data access layer for roles.
type RoleStore struct {
	db *gorm.DB
}

// NewRoleStore binds a role store to a DB or transaction handle
func NewRoleStore(db *gorm.DB) *RoleStore {
	return &RoleStore{db: db}
}

// GetOrCreate looks up a role by name and creates it if absent. A duplicate
// key on create means a concurrent caller won the race; the existing row is
// fetched and returned instead of propagating the conflict.
func (s *RoleStore) GetOrCreate(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	var role domain.Role
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	role = domain.Role{Name: name}
	if err := s.db.WithContext(ctx).Create(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race, fetch the winner's row
			if err := s.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
				return nil, err
			}
			return &role, nil
		}
		return nil, err
	}
	return &role, nil
}
