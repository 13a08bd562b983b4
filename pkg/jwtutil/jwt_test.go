package jwtutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	util := NewJWTUtil(&JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	token, err := util.GenerateToken("0xabc123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "0xabc123", claims.Address)
}

func TestValidateTokenWrongKey(t *testing.T) {
	issuer := NewJWTUtil(&JWTConfig{SigningKey: "key-one", ExpirationHours: 1})
	verifier := NewJWTUtil(&JWTConfig{SigningKey: "key-two", ExpirationHours: 1})

	token, err := issuer.GenerateToken("0xabc123")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	util := NewJWTUtil(&JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	_, err := util.ValidateToken("not-a-token")
	require.Error(t, err)
}
