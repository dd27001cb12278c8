package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("cust-123", AudienceCustomer, "", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cust-123", claims.Subject)
	assert.Equal(t, AudienceCustomer, claims.Audience)
	assert.Empty(t, claims.Role)
}

func TestStaffTokenCarriesRole(t *testing.T) {
	token, err := GenerateToken("staff-9", AudienceStaff, "ADMIN", time.Hour)
	require.NoError(t, err)

	claims, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, AudienceStaff, claims.Audience)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("cust-123", AudienceCustomer, "", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestExtractRejectsGarbage(t *testing.T) {
	_, err := ExtractClaimsFromToken("not-a-token")
	assert.Error(t, err)
}

func TestHashTokenIsDeterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	c := HashToken("another-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
