package auth

import (
	"context" // Context for flow calls
	"errors"  // Error inspection
	"strings" // Username normalization

	"cafetaria/internal/domain" // Importing domain models
	"cafetaria/internal/store"  // Typed data access layer
	"cafetaria/internal/token"  // Token issuer

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Service orchestrates the registration and login flows. Each registration
// runs as a single DB transaction: role resolution, credential creation and
// profile creation either all commit or all roll back.
type Service struct {
	db     *gorm.DB
	tokens *token.Issuer
}

// NewService wires the flows to a DB handle and a token issuer
func NewService(db *gorm.DB, tokens *token.Issuer) *Service {
	return &Service{db: db, tokens: tokens}
}

// RegisterCustomerInput carries the customer registration fields
type RegisterCustomerInput struct {
	Username    string // Login username
	Password    string // Plaintext password, hashed before storage
	Name        string // Customer name
	Address     string // Home address
	MobilePhone string // Mobile phone number
	Email       string // Contact email
}

// RegisterAdminInput carries the admin registration fields
type RegisterAdminInput struct {
	Username string // Login username, also used as the admin's display name
	Password string // Plaintext password, hashed before storage
	Email    string // Contact email
	Phone    string // Phone number
}

// RegisterResult is returned by both registration flows
type RegisterResult struct {
	Username string          // Registered username (lowercase)
	Role     domain.RoleName // Assigned role
}

// LoginResult is returned by a successful login
type LoginResult struct {
	Token string          // Signed bearer token
	Role  domain.RoleName // Role of the authenticated principal
}

// RegisterCustomer registers a CUSTOMER credential and its profile as one
// atomic unit. A taken username yields domain.ErrUsernameTaken; on any
// failure no partial writes survive.
func (s *Service) RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (*RegisterResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	username := strings.ToLower(in.Username)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roles := store.NewRoleStore(tx)
		creds := store.NewCredentialStore(tx)
		customers := store.NewCustomerStore(tx)

		role, err := roles.GetOrCreate(ctx, domain.RoleCustomer)
		if err != nil {
			return err
		}
		// Fast-path duplicate check. The unique constraint on username is
		// still the authority; Create below translates a violation too.
		if _, err := creds.FindByUsername(ctx, username); err == nil {
			return domain.ErrUsernameTaken
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		cred := domain.Credential{
			Username: username,     // Lowercase username
			Password: string(hash), // Bcrypt hash, never plaintext
			RoleID:   role.ID,      // Resolved CUSTOMER role
		}
		if err := creds.Create(ctx, &cred); err != nil {
			return err
		}
		customer := domain.Customer{
			CredentialID: cred.ID,        // Link profile to the new credential
			Name:         in.Name,        // Customer name
			Address:      in.Address,     // Home address
			MobilePhone:  in.MobilePhone, // Mobile phone number
			Email:        in.Email,       // Contact email
		}
		return customers.Create(ctx, &customer)
	})
	if err != nil {
		return nil, err
	}
	return &RegisterResult{Username: username, Role: domain.RoleCustomer}, nil
}

// RegisterAdmin registers an ADMIN credential and its profile as one atomic
// unit, with the same duplicate-check strategy as RegisterCustomer.
func (s *Service) RegisterAdmin(ctx context.Context, in RegisterAdminInput) (*RegisterResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	username := strings.ToLower(in.Username)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roles := store.NewRoleStore(tx)
		creds := store.NewCredentialStore(tx)
		admins := store.NewAdminStore(tx)

		role, err := roles.GetOrCreate(ctx, domain.RoleAdmin)
		if err != nil {
			return err
		}
		if _, err := creds.FindByUsername(ctx, username); err == nil {
			return domain.ErrUsernameTaken
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		cred := domain.Credential{
			Username: username,     // Lowercase username
			Password: string(hash), // Bcrypt hash, never plaintext
			RoleID:   role.ID,      // Resolved ADMIN role
		}
		if err := creds.Create(ctx, &cred); err != nil {
			return err
		}
		admin := domain.Admin{
			CredentialID: cred.ID,  // Link profile to the new credential
			Name:         username, // Admin display name defaults to username
			Email:        in.Email, // Contact email
			Phone:        in.Phone, // Phone number
		}
		return admins.Create(ctx, &admin)
	})
	if err != nil {
		return nil, err
	}
	return &RegisterResult{Username: username, Role: domain.RoleAdmin}, nil
}

// Login verifies a username/password pair and issues a signed token. An
// unknown username and a wrong password both yield domain.ErrBadCredentials
// so the response does not disclose which part failed.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrBadCredentials
	}
	creds := store.NewCredentialStore(s.db)
	cred, err := creds.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, err
	}
	// Compare provided password with stored hash
	if bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(password)) != nil {
		return nil, domain.ErrBadCredentials
	}
	tok, err := s.tokens.Issue(cred.Username, cred.Role.Name)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: tok, Role: cred.Role.Name}, nil
}
