package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations matches the cost the legacy store was created with,
	// so old hashes keep verifying byte-for-byte.
	DefaultIterations = 29000
	saltLen           = 16
	keyLen            = 32

	prefixNative  = "pbkdf2_sha256$"
	prefixPasslib = "$pbkdf2-sha256$"
)

// HashPassword derives a salted PBKDF2-HMAC-SHA256 hash and encodes it as
// pbkdf2_sha256$<iterations>$<salt b64>$<hash b64>.
func HashPassword(password string, iterations int) (string, error) {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	dk := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
	return fmt.Sprintf("%s%d$%s$%s",
		prefixNative,
		iterations,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(dk),
	), nil
}

// VerifyPassword checks a password against a stored hash in constant time.
// Both the native encoding and passlib's $pbkdf2-sha256$ encoding are
// accepted, so records migrated from the old store still verify.
func VerifyPassword(password, stored string) bool {
	switch {
	case strings.HasPrefix(stored, prefixNative):
		parts := strings.Split(stored, "$")
		if len(parts) != 4 {
			return false
		}
		iterations, err := strconv.Atoi(parts[1])
		if err != nil || iterations <= 0 {
			return false
		}
		salt, err := base64.StdEncoding.DecodeString(parts[2])
		if err != nil {
			return false
		}
		expected, err := base64.StdEncoding.DecodeString(parts[3])
		if err != nil {
			return false
		}
		return compare(password, salt, iterations, expected)

	case strings.HasPrefix(stored, prefixPasslib):
		// ['', 'pbkdf2-sha256', '<rounds>', '<salt ab64>', '<checksum ab64>']
		parts := strings.Split(stored, "$")
		if len(parts) < 5 {
			return false
		}
		iterations, err := strconv.Atoi(parts[2])
		if err != nil || iterations <= 0 {
			return false
		}
		salt, err := decodeAB64(parts[3])
		if err != nil {
			return false
		}
		expected, err := decodeAB64(parts[4])
		if err != nil {
			return false
		}
		return compare(password, salt, iterations, expected)
	}
	return false
}

func compare(password string, salt []byte, iterations int, expected []byte) bool {
	dk := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(dk, expected) == 1
}

// decodeAB64 decodes passlib's adapted base64 ('.' for '+', no padding).
func decodeAB64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}
