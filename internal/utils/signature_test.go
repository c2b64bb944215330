package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature_RoundTrip(t *testing.T) {
	payload := []byte(`{"event": "product.approved", "productId": "p1"}`)

	sig := GenerateSignature(payload, "hook-secret")
	assert.True(t, VerifySignature(payload, sig, "hook-secret"))
}

func TestSignature_Mismatch(t *testing.T) {
	payload := []byte(`{"event": "product.approved"}`)
	sig := GenerateSignature(payload, "hook-secret")

	assert.False(t, VerifySignature([]byte(`{"event": "tampered"}`), sig, "hook-secret"))
	assert.False(t, VerifySignature(payload, sig, "other-secret"))
	assert.False(t, VerifySignature(payload, "", "hook-secret"))
}

func TestGenerateRefreshToken_FitsBcryptLimit(t *testing.T) {
	token, err := GenerateRefreshToken()
	require.NoError(t, err)

	assert.True(t, len(token) <= 72, "token %q must fit bcrypt's input limit", token)
	assert.Contains(t, token, "tm_refresh_")
}

func TestGenerateToken_Unique(t *testing.T) {
	a, err := GenerateToken("tm")
	require.NoError(t, err)
	b, err := GenerateToken("tm")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
