package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

func TestHashPasswordFormat(t *testing.T) {
	h, err := HashPassword("s3cret", 1000)
	require.NoError(t, err)

	parts := strings.Split(h, "$")
	require.Len(t, parts, 4)
	assert.Equal(t, "pbkdf2_sha256", parts[0])
	assert.Equal(t, "1000", parts[1])

	salt, err := base64.StdEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	assert.Len(t, salt, 16)

	dk, err := base64.StdEncoding.DecodeString(parts[3])
	require.NoError(t, err)
	assert.Len(t, dk, 32)
}

func TestVerifyPasswordRoundtrip(t *testing.T) {
	h, err := HashPassword("correct horse", 1000)
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct horse", h))
	assert.False(t, VerifyPassword("wrong horse", h))
	assert.False(t, VerifyPassword("", h))
}

func TestVerifyPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same", 1000)
	require.NoError(t, err)
	h2, err := HashPassword("same", 1000)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword("same", h1))
	assert.True(t, VerifyPassword("same", h2))
}

func TestVerifyPasswordLegacyEncoding(t *testing.T) {
	// records migrated from the passlib store use adapted base64
	// ('.' for '+', no padding) and a different prefix
	password := "legacy-pass"
	salt := []byte("0123456789abcdef")
	iterations := 2000
	dk := pbkdf2.Key([]byte(password), salt, iterations, 32, sha256.New)

	ab64 := func(b []byte) string {
		return strings.ReplaceAll(base64.RawStdEncoding.EncodeToString(b), "+", ".")
	}
	stored := fmt.Sprintf("$pbkdf2-sha256$%d$%s$%s", iterations, ab64(salt), ab64(dk))

	assert.True(t, VerifyPassword(password, stored))
	assert.False(t, VerifyPassword("not-it", stored))
}

func TestVerifyPasswordMalformed(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"unknown prefix", "bcrypt$whatever"},
		{"missing segments", "pbkdf2_sha256$1000$only-three"},
		{"bad iteration count", "pbkdf2_sha256$zero$c2FsdA==$aGFzaA=="},
		{"bad base64", "pbkdf2_sha256$1000$!!$!!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyPassword("anything", tt.stored))
		})
	}
}

func TestHashPasswordDefaultIterations(t *testing.T) {
	h, err := HashPassword("x", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, fmt.Sprintf("pbkdf2_sha256$%d$", DefaultIterations)))
	assert.True(t, VerifyPassword("x", h))
}
