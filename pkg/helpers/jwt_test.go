package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, err := m.Issue(map[string]interface{}{
		"email": "a@b.com",
		"name":  "Ayesha",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims["email"])
	assert.Equal(t, "Ayesha", claims["name"])
	assert.NotNil(t, claims["exp"])
	assert.NotNil(t, claims["iat"])
}

func TestIssueDoesNotMutateInput(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	in := map[string]interface{}{"email": "a@b.com"}

	_, err := m.Issue(in)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"email": "a@b.com"}, in)
}

func TestVerifyExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)

	token, err := m.Issue(map[string]interface{}{"email": "a@b.com"})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyFailsUniformly(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	good, err := m.Issue(map[string]interface{}{"email": "a@b.com"})
	require.NoError(t, err)

	other := NewJWTManager("other-secret", time.Hour)
	wrongKey, err := other.Issue(map[string]interface{}{"email": "a@b.com"})
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":         "",
		"garbage":       "not-a-token",
		"wrong secret":  wrongKey,
		"tampered":      good + "x",
		"missing parts": "eyJhbGciOiJIUzI1NiJ9",
	} {
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}
