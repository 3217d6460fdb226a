package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/user"
)

func newTestService() Service {
	return NewJWTService("test-secret-key", "1h", "168h")
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "trainer@vitalfit.kr", "center-1", user.RoleTeamMember)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	userID, _ := decoded.Get("user_id")
	assert.Equal(t, "user-1", userID)
	email, _ := decoded.Get("email")
	assert.Equal(t, "trainer@vitalfit.kr", email)
	centerID, _ := decoded.Get("center_id")
	assert.Equal(t, "center-1", centerID)
	role, _ := decoded.Get("role")
	assert.Equal(t, "team_member", role)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestGenerateRefreshToken_Claims(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "refresh", tokenType)
	userID, _ := decoded.Get("user_id")
	assert.Equal(t, "user-1", userID)
}

func TestGenerateToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "not-a-duration", "also-bad")

	_, _, err := svc.GenerateAccessToken("user-1", "a@b.c", "center-1", user.RoleAdmin)
	assert.Error(t, err)

	_, _, err = svc.GenerateRefreshToken("user-1")
	assert.Error(t, err)
}

func TestSSEToken_RoundTrip(t *testing.T) {
	svc := newTestService()

	token, expiresIn, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	access, _, err := svc.GenerateAccessToken("user-1", "a@b.c", "center-1", user.RoleTeamMember)
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(access)
	assert.Error(t, err)
}

func TestValidateSSEToken_RejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateSSEToken("not-a-jwt")
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	c := svc.RefreshTokenCookie("tok", 1735689600)
	assert.Equal(t, "refresh_token", c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.Equal(t, "/api/v1/auth", c.Path)
	assert.True(t, c.HttpOnly)
}
