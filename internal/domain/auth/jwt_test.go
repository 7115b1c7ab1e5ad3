package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/core/id"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	user := NewUser("alice@example.com", "hash")
	user.Name = "Alice"
	user.IsAdmin = true
	user.Roles = []string{RoleAdmin, RoleUser}

	token, expiresAt, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	uc, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), uc.UserID)
	assert.Equal(t, "alice@example.com", uc.Email)
	assert.Equal(t, "Alice", uc.Name)
	assert.Equal(t, []string{RoleAdmin, RoleUser}, uc.Roles)
	assert.True(t, uc.IsAdmin)
}

func TestJWT_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(DefaultJWTConfig("secret-a"))
	verifier := NewJWTService(DefaultJWTConfig("secret-b"))

	user := NewUser("bob@example.com", "hash")
	token, _, err := issuer.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_RejectsExpiredToken(t *testing.T) {
	cfg := DefaultJWTConfig("test-secret")
	cfg.AccessTokenTTL = -time.Minute
	svc := NewJWTService(cfg)

	user := NewUser("carol@example.com", "hash")
	token, _, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_RejectsGarbage(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestNewUser_Defaults(t *testing.T) {
	user := NewUser("dave@example.com", "hash")

	assert.False(t, id.IsNil(user.ID))
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, []string{RoleUser}, user.Roles)
}
