package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_IssueAndVerify(t *testing.T) {
	provider := NewProvider("test-secret", time.Hour)

	token, expiresAt, err := provider.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	userID, err := provider.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestProvider_Verify_WrongSecret(t *testing.T) {
	token, _, err := NewProvider("secret-a", time.Hour).Issue(42)
	require.NoError(t, err)

	_, err = NewProvider("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestProvider_Verify_Expired(t *testing.T) {
	provider := &Provider{secret: []byte("test-secret"), issuer: defaultIssuer, ttl: -time.Minute}

	token, _, err := provider.Issue(42)
	require.NoError(t, err)

	_, err = provider.Verify(token)
	assert.Error(t, err)
}

func TestProvider_Verify_Garbage(t *testing.T) {
	_, err := NewProvider("test-secret", time.Hour).Verify("not.a.jwt")
	assert.Error(t, err)
}
