package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	m := NewJWTManager("test-secret")

	token, err := m.Issue(42, "super_admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	adminID, role, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), adminID)
	assert.Equal(t, "super_admin", role)
}

func TestJWTManager_VerifyExpired(t *testing.T) {
	m := NewJWTManager("test-secret")

	token, err := m.Issue(42, "event_admin", -time.Minute)
	require.NoError(t, err)

	_, _, err = m.Verify(token)
	assert.Error(t, err)
}

func TestJWTManager_VerifyWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a")
	verifier := NewJWTManager("secret-b")

	token, err := issuer.Issue(42, "event_admin", time.Hour)
	require.NoError(t, err)

	_, _, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTManager_VerifyGarbage(t *testing.T) {
	m := NewJWTManager("test-secret")

	_, _, err := m.Verify("not-a-jwt")
	assert.Error(t, err)
}
