package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken("test-secret", "iris@exhibit.app")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "iris@exhibit.app", claims.Email)
	assert.Equal(t, "iris@exhibit.app", claims.Subject)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken("test-secret", "iris@exhibit.app")
	require.NoError(t, err)

	_, err = ValidateToken("other-secret", token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("test-secret", "not.a.token")
	assert.Error(t, err)
}
