package token

import (
	"time" // Time for token expiration

	"cafetaria/internal/domain" // Role enum for the role claim

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// JWT Claims
type Claims struct {
	Username             string          `json:"username"` // Custom claim for the login principal
	Role                 domain.RoleName `json:"role"`     // Custom claim for the principal's role
	jwt.RegisteredClaims                 // Standard JWT claims
}

// Issuer creates and verifies signed bearer tokens. Tokens are stateless:
// expiry is the only invalidation mechanism.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an issuer with the server-held secret and token lifetime
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the username and role
func (i *Issuer) Issue(username string, role domain.RoleName) (string, error) {
	claims := Claims{
		Username: username, // Custom claim for the login principal
		Role:     role,     // Custom claim for the principal's role
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)), // Token expiry
			IssuedAt:  jwt.NewNumericDate(time.Now()),            // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString(i.secret)                        // Sign the token with the secret
}

// Verify parses a token string and validates signature and expiry
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return i.secret, nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
