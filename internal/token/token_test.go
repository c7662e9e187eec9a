package token

import (
	"testing"
	"time"

	"cafetaria/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	tok, err := issuer.Issue("dewi", domain.RoleCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "dewi", claims.Username)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
}

func TestVerifyTamperedToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	tok, err := issuer.Issue("dewi", domain.RoleCustomer)
	require.NoError(t, err)

	// Flipping any byte of the token must invalidate it
	for i := 0; i < len(tok); i++ {
		raw := []byte(tok)
		raw[i] ^= 0x02
		tampered := string(raw)
		if tampered == tok {
			continue
		}
		_, err := issuer.Verify(tampered)
		assert.Errorf(t, err, "tampered token accepted at byte %d", i)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := NewIssuer("secret-a", time.Hour).Issue("dewi", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = NewIssuer("secret-b", time.Hour).Verify(tok)
	assert.Error(t, err)
}

func TestVerifyExpiredToken(t *testing.T) {
	// Construct an issuer with a negative lifetime so the token is born expired
	issuer := &Issuer{secret: []byte("test-secret"), ttl: -time.Hour}

	tok, err := issuer.Issue("dewi", domain.RoleCustomer)
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.Error(t, err)
}

func TestNewIssuerDefaultTTL(t *testing.T) {
	issuer := NewIssuer("test-secret", 0)
	assert.Equal(t, 24*time.Hour, issuer.ttl)
}
