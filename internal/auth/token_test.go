package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/marketplace-service/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "u-1",
		Name:  "Alice",
		Phone: "9911",
		Role:  domain.RoleUser,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 168)

	token, expiresAt, err := tm.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "9911", claims.Phone)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.Equal(t, "u-1", claims.Subject)
}

func TestTokenManager_DefaultTTLIsSevenDays(t *testing.T) {
	tm := NewTokenManager("secret", 0)

	_, expiresAt, err := tm.GenerateToken(testUser())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, 5*time.Second)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := &TokenManager{secret: []byte("secret"), ttl: -time.Hour}

	token, _, err := tm.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", 1)
	verifier := NewTokenManager("secret-two", 1)

	token, _, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_MalformedToken(t *testing.T) {
	tm := NewTokenManager("secret", 1)

	_, err := tm.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenManager_RejectsForeignSigningMethod(t *testing.T) {
	tm := NewTokenManager("secret", 1)

	claims := &Claims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(signed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected signing method")
}
