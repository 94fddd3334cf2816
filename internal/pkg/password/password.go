package password

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used for customer and employee passwords
const DefaultCost = 10

// bcrypt only looks at the first 72 bytes and rejects longer input.
// Accounts accept up to 1024 characters, so long passwords are digested first.
const bcryptMaxBytes = 72

// Hash hashes a password using bcrypt
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prepare(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hash
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prepare(password)) == nil
}

func prepare(password string) []byte {
	if len(password) <= bcryptMaxBytes {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
