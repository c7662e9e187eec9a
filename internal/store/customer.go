package store

import (
	"context" // Context for DB operations
	"errors"  // Error inspection

	"cafetaria/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// CustomerStore is the typed data access layer for customer profiles.
type CustomerStore struct {
	db *gorm.DB
}

// NewCustomerStore binds a customer store to a DB or transaction handle
func NewCustomerStore(db *gorm.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

// Create persists a customer profile linked to a credential
func (s *CustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	if err := s.db.WithContext(ctx).Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID fetches a customer by primary key
func (s *CustomerStore) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	var customer domain.Customer
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindAll returns every customer profile
func (s *CustomerStore) FindAll(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := s.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Delete removes a customer by id. Deleting an unknown id reports
// domain.ErrNotFound without any side effect.
func (s *CustomerStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
