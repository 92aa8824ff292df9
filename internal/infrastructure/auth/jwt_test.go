package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService("test-secret", 15, 7)
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := newTestService()

	pair, err := svc.Generate(7, false)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims, err := svc.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestJWTService_AdminFlagSurvivesRoundTrip(t *testing.T) {
	svc := newTestService()

	pair, err := svc.Generate(7, true)
	require.NoError(t, err)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	pair, err := newTestService().Generate(7, false)
	require.NoError(t, err)

	other := NewJWTService("different-secret", 15, 7)
	_, err = other.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	_, err := newTestService().Verify("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_Refresh(t *testing.T) {
	svc := newTestService()

	pair, err := svc.Generate(7, true)
	require.NoError(t, err)

	rotated, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)

	claims, err := svc.Verify(rotated.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.True(t, claims.IsAdmin, "admin flag must survive rotation")
}

func TestJWTService_RefreshRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	pair, err := svc.Generate(7, false)
	require.NoError(t, err)

	_, err = svc.Refresh(pair.AccessToken)
	assert.Error(t, err, "an access token must not mint a new pair")
}
