package store

import (
	"context" // Context for DB operations
	"errors"  // Error inspection

	"cafetaria/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// AdminStore is the typed data access layer for administrator profiles.
type AdminStore struct {
	db *gorm.DB
}

// NewAdminStore binds an admin store to a DB or transaction handle
func NewAdminStore(db *gorm.DB) *AdminStore {
	return &AdminStore{db: db}
}

// Create persists an admin profile linked to a credential
func (s *AdminStore) Create(ctx context.Context, admin *domain.Admin) error {
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID fetches an admin by primary key
func (s *AdminStore) FindByID(ctx context.Context, id string) (*domain.Admin, error) {
	var admin domain.Admin
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindAll returns every admin profile
func (s *AdminStore) FindAll(ctx context.Context) ([]domain.Admin, error) {
	var admins []domain.Admin
	if err := s.db.WithContext(ctx).Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// Delete removes an admin by id. Deleting an unknown id reports
// domain.ErrNotFound without any side effect.
func (s *AdminStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Admin{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
