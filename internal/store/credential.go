package store

import (
	"context" // Context for DB operations
	"errors"  // Error inspection
	"strings" // Username normalization

	"cafetaria/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// CredentialStore is the typed data access layer for login credentials.
// Usernames are normalized to lowercase on write and on lookup, so lookups
// are case-insensitive.
type CredentialStore struct {
	db *gorm.DB
}

// NewCredentialStore binds a credential store to a DB or transaction handle
func NewCredentialStore(db *gorm.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// Create persists a credential. A username collision surfaces as
// domain.ErrUsernameTaken via the unique constraint.
func (s *CredentialStore) Create(ctx context.Context, cred *domain.Credential) error {
	cred.Username = strings.ToLower(cred.Username)
	if err := s.db.WithContext(ctx).Create(cred).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// FindByUsername fetches a credential with its role preloaded
func (s *CredentialStore) FindByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	var cred domain.Credential
	err := s.db.WithContext(ctx).Preload("Role").
		Where("username = ?", strings.ToLower(username)).First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

// FindByID fetches a credential by primary key with its role preloaded
func (s *CredentialStore) FindByID(ctx context.Context, id string) (*domain.Credential, error) {
	var cred domain.Credential
	err := s.db.WithContext(ctx).Preload("Role").
		Where("id = ?", id).First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}
