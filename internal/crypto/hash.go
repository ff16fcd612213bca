package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// hashPrefix marks hashes produced by HashPassword.
const hashPrefix = "$bcrypt-sha256$"

var hashCost = bcrypt.DefaultCost

// SetHashCost changes the bcrypt cost used by HashPassword. Values outside
// bcrypt's accepted range are clamped. Intended for tests.
func SetHashCost(cost int) {
	switch {
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	hashCost = cost
}

// HashPassword hashes a password with bcrypt over a SHA-256 pre-hash. Every
// byte of the input is significant, including those past bcrypt's 72 byte limit.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return hashPrefix + string(hash), nil
}

// VerifyPassword reports whether password matches encodedHash. Malformed or
// foreign hashes never match.
func VerifyPassword(password, encodedHash string) bool {
	hash, ok := strings.CutPrefix(encodedHash, hashPrefix)
	if !ok || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password)) == nil
}

// prehash decodes the password leniently, dropping invalid UTF-8, and returns
// the base64 SHA-256 digest (44 bytes, under bcrypt's limit).
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(strings.ToValidUTF8(password, "")))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
