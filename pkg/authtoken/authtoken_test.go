package authtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := m.Issue(7, "alex@campus.edu", "student")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alex@campus.edu", claims.Email)
	assert.Equal(t, "student", claims.Role)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer, err := NewManager("secret-one", time.Hour)
	require.NoError(t, err)
	verifier, err := NewManager("secret-two", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(7, "alex@campus.edu", "student")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	m, err := NewManager("test-secret", -time.Minute)
	require.NoError(t, err)

	token, err := m.Issue(7, "alex@campus.edu", "student")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewManagerEmptySecret(t *testing.T) {
	_, err := NewManager("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
